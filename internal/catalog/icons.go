package catalog

import "strings"

// Ordered: the first platform whose name occurs in the category name wins.
var knownPlatforms = []string{
	"instagram",
	"tiktok",
	"youtube",
	"telegram",
	"facebook",
	"twitter",
	"spotify",
	"discord",
	"twitch",
	"linkedin",
	"threads",
	"snapchat",
}

func iconHintFor(categoryName string) string {
	lowered := strings.ToLower(categoryName)
	for _, platform := range knownPlatforms {
		if strings.Contains(lowered, platform) {
			return platform
		}
	}
	return ""
}
