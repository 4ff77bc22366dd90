package utils

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
)

var youtubeURLPattern = regexp.MustCompile(
	`^(https?://)?(www\.)?(youtube\.com/(watch\?v=|embed/|v/|shorts/)|youtu\.be/)[\w-]{11}(\?.*)?$`,
)

// IsValidYouTubeURL reports whether link is a watch/embed/shorts/youtu.be URL
// with an 11-character video id.
func IsValidYouTubeURL(link string) bool {
	return youtubeURLPattern.MatchString(link)
}

// FetchYouTubeTitle looks up a video's title through the public oEmbed
// endpoint. Callers treat failures as non-fatal.
func FetchYouTubeTitle(link string) (string, error) {
	var result struct {
		Title string `json:"title"`
	}

	client := resty.New().SetTimeout(5 * time.Second)
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"url":    link,
			"format": "json",
		}).
		SetResult(&result).
		Get("https://www.youtube.com/oembed")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("oembed lookup failed, code: %d", resp.StatusCode())
	}

	return result.Title, nil
}
