// internal/stubapi/seed.go
package stubapi

import "libery/internal/catalog"

// SeedData returns example items to pre-populate the stub backend for
// local development.
func SeedData() []catalog.Item {
	return []catalog.Item{
		{
			ItemType:    catalog.KindBook,
			Title:       "The Go Programming Language",
			Author:      "Alan A. A. Donovan",
			Category:    "Programming",
			PublishYear: 2015,
			ISBN:        "9780134190440",
			Publisher:   "Addison-Wesley",
			Edition:     "1st",
			PageCount:   380,
			Language:    "English",
			Genre:       "Technical",
		},
		{
			ItemType:     catalog.KindComic,
			Title:        "Bone: Out from Boneville",
			Author:       "Jeff Smith",
			Category:     "Graphic Novel",
			PublishYear:  1995,
			ISBN:         "9780963660985",
			Publisher:    "Cartoon Books",
			Series:       "Bone",
			VolumeNumber: 1,
			Illustrator:  "Jeff Smith",
			ColorType:    "BLACK_AND_WHITE",
			TargetAge:    "ALL_AGES",
		},
		{
			ItemType:             catalog.KindJournal,
			Title:                "Communications of the ACM",
			Author:               "ACM",
			Category:             "Computer Science",
			PublishYear:          2024,
			ISSN:                 "0001-0782",
			Volume:               "67",
			Issue:                "4",
			PublicationFrequency: "MONTHLY",
			Publisher:            "ACM",
		},
	}
}
