// Package linkpreview fetches a web page and extracts the metadata a social
// network would show in a link card: title, description and image URLs.
//
// Extraction order, first match wins for single values:
//
//	title:        og:title, twitter:title, <title>
//	description:  og:description, twitter:description, <meta name="description">
//	images:       og:image (and :url, :secure_url), twitter:image,
//	              <link rel="image_src">, then <img src> as a last resort
//
// Image URLs are resolved against <base href> when present, otherwise against
// the final response URL (after redirects). A response whose content type is
// an image yields that URL as the single image.
package linkpreview
