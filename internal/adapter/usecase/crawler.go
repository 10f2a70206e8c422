package usecase

import "strings"

// crawlerSignatures is the fixed allow-list of bot User-Agent fragments that
// should receive the Open Graph document instead of a redirect. Matching is
// case-insensitive substring containment; anything else is a human. The list
// is deliberately narrow: a missed crawler only degrades preview quality,
// while a false positive would serve a human a static page.
var crawlerSignatures = []string{
	"facebookexternalhit",
	"twitterbot",
	"linkedinbot",
	"whatsapp",
	"telegram",
	"slackbot",
	"discordbot",
	"bingbot",
	"googlebot",
}

// IsCrawler reports whether the User-Agent belongs to a known social or
// search crawler. An empty User-Agent is classified human.
func IsCrawler(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	ua := strings.ToLower(userAgent)
	for _, sig := range crawlerSignatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}
	return false
}
