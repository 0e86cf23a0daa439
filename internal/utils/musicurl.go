package utils

import (
	"regexp"
	"strings"
)

// MusicKind classifies how a music URL should be embedded on a rendered
// invitation page.
type MusicKind string

const (
	MusicKindYouTube MusicKind = "youtube"
	MusicKindSpotify MusicKind = "spotify"
	MusicKindFile    MusicKind = "file"
)

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtube\.com/embed/|youtu\.be/)([A-Za-z0-9_-]{6,})`)
var spotifyTrackPattern = regexp.MustCompile(`open\.spotify\.com/(?:intl-[a-z]+/)?track/([A-Za-z0-9]+)`)

// ClassifyMusicURL recognizes YouTube and Spotify links by pattern; anything
// else is treated as a direct audio file URL.
func ClassifyMusicURL(raw string) MusicKind {
	raw = strings.TrimSpace(raw)
	if youtubeIDPattern.MatchString(raw) {
		return MusicKindYouTube
	}
	if spotifyTrackPattern.MatchString(raw) {
		return MusicKindSpotify
	}
	return MusicKindFile
}

// ExtractYouTubeID pulls the video id out of a watch, embed, or short-link
// URL. Returns false when the URL is not a recognizable YouTube link.
func ExtractYouTubeID(raw string) (string, bool) {
	matches := youtubeIDPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// ExtractSpotifyTrackID pulls the track id out of a Spotify track URL.
func ExtractSpotifyTrackID(raw string) (string, bool) {
	matches := spotifyTrackPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}
