package templates

import (
	"time"

	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/internal/i18n"
	"github.com/undangin/undangin/internal/utils"
)

// MusicEmbed is the resolved background-music reference for one page render.
type MusicEmbed struct {
	Kind      utils.MusicKind
	URL       string
	Title     string
	Artist    string
	YouTubeID string
	SpotifyID string
}

// InvitationView is the normalized invitation shape consumed by every
// renderer. Optional scalars are plain strings where "" means absent, and
// Gallery is always a non-nil slice because renderers iterate it
// unconditionally.
type InvitationView struct {
	Title string
	Slug  string

	BrideName   string
	GroomName   string
	BrideFather string
	BrideMother string
	GroomFather string
	GroomMother string

	MainDate      time.Time
	AkadDate      *time.Time
	ReceptionDate *time.Time

	Location        string
	LocationAddress string
	LocationMapURL  string

	LoveStory  string
	Gallery    []string
	BridePhoto string
	GroomPhoto string
	Music      *MusicEmbed

	Lang i18n.Language
}

// NewInvitationView flattens a stored invitation (and its resolved music row,
// which may be nil) into the renderer contract.
func NewInvitationView(inv *database.Invitation, music *database.Music, lang i18n.Language) InvitationView {
	view := InvitationView{
		Title:           inv.Title,
		Slug:            inv.Slug,
		BrideName:       inv.BrideName,
		GroomName:       inv.GroomName,
		BrideFather:     inv.BrideFather.String,
		BrideMother:     inv.BrideMother.String,
		GroomFather:     inv.GroomFather.String,
		GroomMother:     inv.GroomMother.String,
		MainDate:        inv.MainDate,
		Location:        inv.Location,
		LocationAddress: inv.LocationAddress.String,
		LocationMapURL:  inv.LocationMapURL.String,
		LoveStory:       inv.LoveStory.String,
		Gallery:         inv.Gallery,
		BridePhoto:      inv.BridePhoto.String,
		GroomPhoto:      inv.GroomPhoto.String,
		Lang:            lang,
	}

	if view.Gallery == nil {
		view.Gallery = []string{}
	}
	if inv.AkadDate.Valid {
		t := inv.AkadDate.Time
		view.AkadDate = &t
	}
	if inv.ReceptionDate.Valid {
		t := inv.ReceptionDate.Time
		view.ReceptionDate = &t
	}
	if music != nil {
		view.Music = newMusicEmbed(music)
	}

	return view
}

func newMusicEmbed(m *database.Music) *MusicEmbed {
	embed := &MusicEmbed{
		Kind:   utils.ClassifyMusicURL(m.URL),
		URL:    m.URL,
		Title:  m.Title,
		Artist: m.Artist.String,
	}
	switch embed.Kind {
	case utils.MusicKindYouTube:
		embed.YouTubeID, _ = utils.ExtractYouTubeID(m.URL)
	case utils.MusicKindSpotify:
		embed.SpotifyID, _ = utils.ExtractSpotifyTrackID(m.URL)
	}
	return embed
}
