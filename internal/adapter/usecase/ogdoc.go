package usecase

import (
	"html/template"
	"net/url"
	"strings"

	"biohub/internal/core/domain"
)

const defaultOGImagePath = "/og-default.png"
const defaultThemeColor = "#000000"

var ogTemplate = template.Must(template.New("og").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Description}}">
  <meta name="theme-color" content="{{.ThemeColor}}">

  <meta property="og:type" content="website">
  <meta property="og:title" content="{{.Title}}">
  <meta property="og:description" content="{{.Description}}">
  <meta property="og:image" content="{{.Image}}">
  <meta property="og:url" content="{{.URL}}">
  <meta property="og:site_name" content="{{.SiteName}}">

  <meta name="twitter:card" content="summary">
  <meta name="twitter:title" content="{{.Title}}">
  <meta name="twitter:description" content="{{.Description}}">
  <meta name="twitter:image" content="{{.Image}}">

  <meta http-equiv="refresh" content="0;url={{.URL}}">
</head>
<body>
  <p>Redirecting to <a href="{{.URL}}">{{.Title}}</a>...</p>
</body>
</html>
`))

type ogData struct {
	Title       string
	Description string
	Image       string
	ThemeColor  string
	SiteName    string
	URL         string
}

// RenderOGDocument produces the crawler-facing HTML for a brand: Open Graph
// and Twitter Card meta tags plus a meta-refresh and a visible anchor so a
// misclassified human still reaches the destination without JavaScript.
// Pure and deterministic; all interpolated values are HTML-escaped by the
// template engine.
func RenderOGDocument(b *domain.Brand, destinationURL string) string {
	desc := b.Tagline
	if desc == "" {
		desc = "Visit " + b.Name
		if loc := b.Location(); loc != "" {
			desc += " in " + loc
		}
	}

	image := b.LogoURL
	if image == "" {
		image = originOf(destinationURL) + defaultOGImagePath
	}

	color := b.Color
	if color == "" {
		color = defaultThemeColor
	}

	var sb strings.Builder
	// the template cannot fail on a string builder with these inputs
	_ = ogTemplate.Execute(&sb, ogData{
		Title:       b.Name,
		Description: desc,
		Image:       image,
		ThemeColor:  color,
		SiteName:    b.Name,
		URL:         destinationURL,
	})
	return sb.String()
}

func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
