package dispatch

const msgWelcome = "✅ Welcome! Select a series:"
const msgSeries = "📺 Available series:"
const msgJoin = "🔒 To watch, please join our channel first, then send /start again."
const msgSeriesNotFound = "❌ Series not found."
const msgEpisodeNotFound = "❌ Episode not found."
const fmtEpisodes = "🎬 <b>%s</b>\nSelect an episode:"
const fmtComingSoon = "⏳ <b>%s</b> - Episode %s is coming soon."
const fmtCaption = "%s - Episode %s"
const fmtEpisodeButton = "Episode %s"
