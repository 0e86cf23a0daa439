package templates

import (
	"io"

	"github.com/a-h/templ"
	"github.com/undangin/undangin/internal/i18n"
	"github.com/undangin/undangin/internal/utils"
)

// invitationTheme captures what differs between the visual templates: the
// page class its stylesheet keys off, the section order, and which optional
// blocks the layout gives prominence.
type invitationTheme struct {
	bodyClass    string
	greeting     string
	storyFirst   bool
	showParents  bool
	galleryTitle string
}

// ClassicElegance is the default renderer.
func ClassicElegance(view InvitationView) templ.Component {
	return renderInvitation(view, invitationTheme{
		bodyClass:    "tpl-classic-elegance",
		greeting:     "Dengan memohon rahmat Tuhan Yang Maha Esa",
		showParents:  true,
		galleryTitle: "Galeri",
	})
}

func RusticGarden(view InvitationView) templ.Component {
	return renderInvitation(view, invitationTheme{
		bodyClass:    "tpl-rustic-garden",
		greeting:     "Dua hati, satu taman",
		storyFirst:   true,
		galleryTitle: "Momen Kami",
	})
}

func ModernMinimal(view InvitationView) templ.Component {
	return renderInvitation(view, invitationTheme{
		bodyClass:    "tpl-modern-minimal",
		greeting:     "Save the date",
		galleryTitle: "Gallery",
	})
}

func FloralRomance(view InvitationView) templ.Component {
	return renderInvitation(view, invitationTheme{
		bodyClass:    "tpl-floral-romance",
		greeting:     "Cinta yang bersemi",
		storyFirst:   true,
		showParents:  true,
		galleryTitle: "Galeri Cinta",
	})
}

func TraditionalJawa(view InvitationView) templ.Component {
	return renderInvitation(view, invitationTheme{
		bodyClass:    "tpl-traditional-jawa",
		greeting:     "Nderek mangayubagya",
		showParents:  true,
		galleryTitle: "Galeri",
	})
}

func renderInvitation(view InvitationView, theme invitationTheme) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}

		writeDocumentHead(ew, view.Title, theme.bodyClass)

		ew.printf(`<header class="hero">
<p class="greeting">%s</p>
<h1>%s &amp; %s</h1>
<p class="main-date">%s</p>
</header>
`, esc(theme.greeting), esc(view.GroomName), esc(view.BrideName),
			esc(i18n.FormatDate(view.MainDate, view.Lang)))

		if theme.showParents {
			writeParentsSection(ew, view)
		}
		writeCoupleSection(ew, view)

		if theme.storyFirst {
			writeStorySection(ew, view)
			writeScheduleSection(ew, view)
		} else {
			writeScheduleSection(ew, view)
			writeStorySection(ew, view)
		}

		writeLocationSection(ew, view)
		writeGallerySection(ew, view, theme.galleryTitle)
		writeMusicSection(ew, view)
		writeRSVPSection(ew, view)

		writeDocumentFoot(ew)
		return ew.err
	})
}

func writeCoupleSection(ew *errWriter, view InvitationView) {
	ew.write(`<section class="couple">` + "\n")
	if view.GroomPhoto != "" {
		ew.printf(`<img class="photo groom" src="%s" alt="%s">`+"\n", esc(view.GroomPhoto), esc(view.GroomName))
	}
	if view.BridePhoto != "" {
		ew.printf(`<img class="photo bride" src="%s" alt="%s">`+"\n", esc(view.BridePhoto), esc(view.BrideName))
	}
	ew.write("</section>\n")
}

func writeParentsSection(ew *errWriter, view InvitationView) {
	hasGroomParents := view.GroomFather != "" || view.GroomMother != ""
	hasBrideParents := view.BrideFather != "" || view.BrideMother != ""
	if !hasGroomParents && !hasBrideParents {
		return
	}

	ew.write(`<section class="parents">` + "\n")
	if hasGroomParents {
		ew.printf(`<p>Putra dari Bapak %s dan Ibu %s</p>`+"\n", esc(view.GroomFather), esc(view.GroomMother))
	}
	if hasBrideParents {
		ew.printf(`<p>Putri dari Bapak %s dan Ibu %s</p>`+"\n", esc(view.BrideFather), esc(view.BrideMother))
	}
	ew.write("</section>\n")
}

func writeScheduleSection(ew *errWriter, view InvitationView) {
	ew.write(`<section class="schedule">` + "\n")
	if view.AkadDate != nil {
		ew.printf(`<p class="akad">Akad: %s</p>`+"\n", esc(i18n.FormatDateTime(*view.AkadDate, view.Lang)))
	}
	if view.ReceptionDate != nil {
		ew.printf(`<p class="reception">Resepsi: %s</p>`+"\n", esc(i18n.FormatDateTime(*view.ReceptionDate, view.Lang)))
	}
	ew.write("</section>\n")
}

func writeStorySection(ew *errWriter, view InvitationView) {
	if view.LoveStory == "" {
		return
	}
	ew.printf(`<section class="love-story">
<h2>Kisah Kami</h2>
<p>%s</p>
</section>
`, esc(view.LoveStory))
}

func writeLocationSection(ew *errWriter, view InvitationView) {
	ew.printf(`<section class="location">
<h2>Lokasi</h2>
<p class="venue">%s</p>
`, esc(view.Location))
	if view.LocationAddress != "" {
		ew.printf(`<p class="address">%s</p>`+"\n", esc(view.LocationAddress))
	}
	if view.LocationMapURL != "" {
		ew.printf(`<a class="map-link" href="%s">Lihat Peta</a>`+"\n", esc(view.LocationMapURL))
	}
	ew.write("</section>\n")
}

func writeGallerySection(ew *errWriter, view InvitationView, title string) {
	ew.printf(`<section class="gallery">
<h2>%s</h2>
<div class="gallery-grid">
`, esc(title))
	for _, url := range view.Gallery {
		ew.printf(`<img src="%s" alt="">`+"\n", esc(url))
	}
	ew.write("</div>\n</section>\n")
}

func writeMusicSection(ew *errWriter, view InvitationView) {
	if view.Music == nil {
		return
	}

	ew.write(`<section class="music">` + "\n")
	switch view.Music.Kind {
	case utils.MusicKindYouTube:
		ew.printf(`<iframe src="https://www.youtube.com/embed/%s?autoplay=1" title="%s" allow="autoplay"></iframe>`+"\n",
			esc(view.Music.YouTubeID), esc(view.Music.Title))
	case utils.MusicKindSpotify:
		ew.printf(`<iframe src="https://open.spotify.com/embed/track/%s" title="%s"></iframe>`+"\n",
			esc(view.Music.SpotifyID), esc(view.Music.Title))
	default:
		ew.printf(`<audio src="%s" autoplay loop></audio>`+"\n", esc(view.Music.URL))
	}
	ew.write("</section>\n")
}

func writeRSVPSection(ew *errWriter, view InvitationView) {
	ew.printf(`<section class="rsvp">
<h2>Konfirmasi Kehadiran</h2>
<form method="post" action="/invitation/%s/rsvp">
<input type="text" name="name" placeholder="Nama" required>
<input type="email" name="email" placeholder="Email (opsional)">
<input type="tel" name="phone" placeholder="No. HP (opsional)">
<select name="attendance_status">
<option value="attending">Hadir</option>
<option value="not_attending">Tidak Hadir</option>
</select>
<select name="number_of_guests">
<option>1</option><option>2</option><option>3</option><option>4</option><option>5</option>
</select>
<textarea name="message" placeholder="Ucapan &amp; doa"></textarea>
<button type="submit">Kirim</button>
</form>
<form method="get" action="/invitation/%s/guest-search" class="guest-search">
<input type="text" name="q" placeholder="Cek status: nama Anda">
<button type="submit">Cari</button>
</form>
</section>
`, esc(view.Slug), esc(view.Slug))
}
