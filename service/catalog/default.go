package catalog

// Default returns the built-in catalog used when no catalog file is configured.
func Default() Catalog {
	c, _ := New(
		Series{
			Code:  "rick_and_morty",
			Title: "Rick and Morty",
			Episodes: []Episode{
				{
					Label: "1",
					Media: "PLACEHOLDER_EP1",
				},
				{
					Label: "2",
					Media: "PLACEHOLDER_EP2",
				},
			},
		},
	)
	return c
}
