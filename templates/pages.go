package templates

import (
	"io"

	"github.com/a-h/templ"
	"github.com/undangin/undangin/internal/database"
	"github.com/undangin/undangin/internal/i18n"
)

// Home renders the landing page with the template catalog.
func Home(lang i18n.Language, loggedIn bool) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}
		writeDocumentHead(ew, "Undangin", "page-home")

		ew.write(`<header class="site-header"><h1>Undangin</h1>`)
		if loggedIn {
			ew.write(`<nav><a href="/dashboard">Dashboard</a> <a href="/auth/logout">Keluar</a></nav>`)
		} else {
			ew.write(`<nav><a href="/auth/google">Masuk dengan Google</a></nav>`)
		}
		ew.write("</header>\n")

		ew.write(`<section class="catalog">` + "\n")
		for _, entry := range Catalog() {
			ew.printf(`<article class="template-card %s">
<img src="%s" alt="%s">
<h2>%s`, esc(entry.Category), esc(entry.Image), esc(entry.Name), esc(entry.Name))
			if entry.Popular {
				ew.write(`<span class="badge-popular">Populer</span>`)
			}
			ew.printf(`</h2>
<p>%s</p>
<ul>
`, esc(entry.Description))
			for _, feature := range entry.Features {
				ew.printf("<li>%s</li>\n", esc(feature))
			}
			ew.write("</ul>\n</article>\n")
		}
		ew.write("</section>\n")

		writeDocumentFoot(ew)
		return ew.err
	})
}

// NotFound renders the dedicated page for slugs with no active invitation.
func NotFound(lang i18n.Language) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}
		writeDocumentHead(ew, "Undangan tidak ditemukan", "page-not-found")
		if lang == i18n.English {
			ew.write(`<main><h1>Invitation not found</h1><p>The link may be wrong, or the invitation is no longer published.</p><a href="/">Back to home</a></main>` + "\n")
		} else {
			ew.write(`<main><h1>Undangan tidak ditemukan</h1><p>Tautan mungkin salah, atau undangan sudah tidak dipublikasikan.</p><a href="/">Kembali ke beranda</a></main>` + "\n")
		}
		writeDocumentFoot(ew)
		return ew.err
	})
}

// Dashboard lists the owner's invitations, active or not.
func Dashboard(userName string, invitations []*database.Invitation) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}
		writeDocumentHead(ew, "Dashboard", "page-dashboard")

		ew.printf(`<header class="site-header"><h1>Dashboard</h1><p>Halo, %s</p>
<nav><a href="/dashboard/invitations/new">Buat Undangan</a> <a href="/auth/logout">Keluar</a></nav></header>
<table class="invitation-list">
<tr><th>Judul</th><th>Slug</th><th>Template</th><th>Status</th><th></th></tr>
`, esc(userName))

		for _, inv := range invitations {
			status := "Nonaktif"
			if inv.Active {
				status = "Aktif"
			}
			ew.printf(`<tr>
<td>%s</td>
<td><a href="/invitation/%s">%s</a></td>
<td>%s</td>
<td>%s</td>
<td>
<a href="/dashboard/invitations/edit/%s">Edit</a>
<a href="/dashboard/invitations/preview/%s">Pratinjau</a>
<a href="/dashboard/invitations/guests/%s">Tamu</a>
<form method="post" action="/dashboard/invitations/toggle-active" class="inline">
<input type="hidden" name="id" value="%s">
<button type="submit">%s</button>
</form>
</td>
</tr>
`, esc(inv.Title), esc(inv.Slug), esc(inv.Slug), esc(inv.TemplateID), status,
				esc(inv.ID), esc(inv.ID), esc(inv.ID), esc(inv.ID),
				map[bool]string{true: "Nonaktifkan", false: "Aktifkan"}[inv.Active])
		}

		ew.write("</table>\n")
		writeDocumentFoot(ew)
		return ew.err
	})
}

// InvitationFormData carries the authoring form state back into the page,
// both for edit prefills and for re-rendering after a validation error.
type InvitationFormData struct {
	ID         string
	Title      string
	Slug       string
	TemplateID string

	BrideName   string
	GroomName   string
	BrideFather string
	BrideMother string
	GroomFather string
	GroomMother string

	MainDate      string
	AkadDate      string
	ReceptionDate string

	Location        string
	LocationAddress string
	LocationMapURL  string

	LoveStory  string
	Gallery    string
	BridePhoto string
	GroomPhoto string
	MusicID    string
}

// InvitationForm renders the authoring form for create (empty ID) or edit.
func InvitationForm(userName string, form InvitationFormData, musicOptions []*database.Music, errorMsg string) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}
		writeDocumentHead(ew, "Undangan", "page-invitation-form")

		action := "/dashboard/invitations/create"
		heading := "Buat Undangan"
		if form.ID != "" {
			action = "/dashboard/invitations/update/" + form.ID
			heading = "Edit Undangan"
		}

		ew.printf(`<header class="site-header"><h1>%s</h1><p>%s</p></header>`+"\n", heading, esc(userName))
		if errorMsg != "" {
			ew.printf(`<p class="error">%s</p>`+"\n", esc(errorMsg))
		}

		ew.printf(`<form method="post" action="%s" class="invitation-form">`+"\n", action)

		textInput(ew, "title", "Judul", form.Title, true)
		textInput(ew, "slug", "Slug (otomatis jika kosong)", form.Slug, false)

		ew.write(`<select name="template_id">` + "\n")
		for _, entry := range Catalog() {
			selected := ""
			if entry.ID == form.TemplateID {
				selected = " selected"
			}
			ew.printf(`<option value="%s"%s>%s</option>`+"\n", esc(entry.ID), selected, esc(entry.Name))
		}
		ew.write("</select>\n")

		textInput(ew, "groom_name", "Nama Mempelai Pria", form.GroomName, true)
		textInput(ew, "bride_name", "Nama Mempelai Wanita", form.BrideName, true)
		textInput(ew, "groom_father", "Ayah Mempelai Pria", form.GroomFather, false)
		textInput(ew, "groom_mother", "Ibu Mempelai Pria", form.GroomMother, false)
		textInput(ew, "bride_father", "Ayah Mempelai Wanita", form.BrideFather, false)
		textInput(ew, "bride_mother", "Ibu Mempelai Wanita", form.BrideMother, false)

		dateInput(ew, "main_date", "Tanggal Utama", form.MainDate, true)
		dateInput(ew, "akad_date", "Akad", form.AkadDate, false)
		dateInput(ew, "reception_date", "Resepsi", form.ReceptionDate, false)

		textInput(ew, "location", "Lokasi", form.Location, true)
		textInput(ew, "location_address", "Alamat", form.LocationAddress, false)
		textInput(ew, "location_map_url", "Tautan Peta", form.LocationMapURL, false)

		ew.printf(`<textarea name="love_story" placeholder="Kisah cinta">%s</textarea>`+"\n", esc(form.LoveStory))
		ew.printf(`<textarea name="gallery" placeholder="URL galeri, satu per baris">%s</textarea>`+"\n", esc(form.Gallery))
		textInput(ew, "groom_photo", "Foto Mempelai Pria (URL)", form.GroomPhoto, false)
		textInput(ew, "bride_photo", "Foto Mempelai Wanita (URL)", form.BridePhoto, false)

		ew.write(`<select name="music_id"><option value="">Tanpa musik</option>` + "\n")
		for _, m := range musicOptions {
			selected := ""
			if m.ID == form.MusicID {
				selected = " selected"
			}
			label := m.Title
			if m.Artist.Valid {
				label += " - " + m.Artist.String
			}
			ew.printf(`<option value="%s"%s>%s</option>`+"\n", esc(m.ID), selected, esc(label))
		}
		ew.write("</select>\n")

		ew.write(`<button type="submit">Simpan</button>
</form>
`)
		writeDocumentFoot(ew)
		return ew.err
	})
}

func textInput(ew *errWriter, name, label, value string, required bool) {
	req := ""
	if required {
		req = " required"
	}
	ew.printf(`<label>%s<input type="text" name="%s" value="%s"%s></label>`+"\n",
		esc(label), esc(name), esc(value), req)
}

func dateInput(ew *errWriter, name, label, value string, required bool) {
	req := ""
	if required {
		req = " required"
	}
	ew.printf(`<label>%s<input type="datetime-local" name="%s" value="%s"%s></label>`+"\n",
		esc(label), esc(name), esc(value), req)
}

// GuestList renders the owner's guest table with aggregate stats.
func GuestList(userName string, inv *database.Invitation, guests []*database.Guest, stats database.GuestStats, lang i18n.Language) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}
		writeDocumentHead(ew, "Daftar Tamu", "page-guest-list")

		ew.printf(`<header class="site-header"><h1>Daftar Tamu — %s</h1><p>%s</p>
<nav><a href="/dashboard">Dashboard</a> <a href="/dashboard/invitations/guests/export/%s">Unduh CSV</a></nav></header>
<section class="stats">
<span>Total: %d</span>
<span>Hadir: %d</span>
<span>Tidak Hadir: %d</span>
<span>Belum Konfirmasi: %d</span>
<span>Jumlah Tamu: %d</span>
</section>
<table class="guest-list">
<tr><th>Nama</th><th>Email</th><th>Telepon</th><th>Status</th><th>Jumlah</th><th>Pesan</th><th>Kode</th></tr>
`, esc(inv.Title), esc(userName), esc(inv.ID),
			stats.Total, stats.Attending, stats.NotAttending, stats.Pending, stats.TotalGuests)

		for _, g := range guests {
			ew.printf(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>`+"\n",
				esc(g.Name), esc(g.Email.String), esc(g.Phone.String),
				esc(i18n.AttendanceLabel(lang, string(g.Attendance))),
				g.NumberOfGuests, esc(g.Message.String), esc(g.GuestCode))
		}

		ew.write("</table>\n")
		writeDocumentFoot(ew)
		return ew.err
	})
}

// RSVPConfirmation shows the post-submit state with the stored guest code.
func RSVPConfirmation(lang i18n.Language, guestName, guestCode, slug string) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}
		writeDocumentHead(ew, "Terima kasih", "page-rsvp-confirmation")
		if lang == i18n.English {
			ew.printf(`<main><h1>Thank you, %s!</h1>
<p>Your RSVP has been recorded.</p>
<p class="guest-code">Your guest code: <strong>%s</strong></p>
<a href="/invitation/%s">Back to the invitation</a></main>
`, esc(guestName), esc(guestCode), esc(slug))
		} else {
			ew.printf(`<main><h1>Terima kasih, %s!</h1>
<p>Konfirmasi kehadiran Anda sudah tercatat.</p>
<p class="guest-code">Kode tamu Anda: <strong>%s</strong></p>
<a href="/invitation/%s">Kembali ke undangan</a></main>
`, esc(guestName), esc(guestCode), esc(slug))
		}
		writeDocumentFoot(ew)
		return ew.err
	})
}

// AdminDashboard renders the platform-wide counts and the template usage
// histogram. Unknown template ids appear under their literal stored value.
func AdminDashboard(userName string, stats *database.AdminStats, histogram []database.TemplateCount) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}
		writeDocumentHead(ew, "Admin", "page-admin")

		ew.printf(`<header class="site-header"><h1>Admin</h1><p>%s</p>
<nav><a href="/admin/music">Musik</a> <a href="/auth/logout">Keluar</a></nav></header>
<section class="stats">
<span>Pengguna: %d</span>
<span>Undangan: %d</span>
<span>Musik aktif: %d</span>
</section>
<table class="template-histogram">
<tr><th>Template</th><th>Jumlah</th></tr>
`, esc(userName), stats.Users, stats.Invitations, stats.ActiveMusic)

		for _, tc := range histogram {
			name := tc.TemplateID
			if entry, ok := CatalogEntryByID(tc.TemplateID); ok {
				name = entry.Name
			}
			ew.printf("<tr><td>%s</td><td>%d</td></tr>\n", esc(name), tc.Count)
		}

		ew.write("</table>\n")
		writeDocumentFoot(ew)
		return ew.err
	})
}

// AdminMusic renders the music catalog manager.
func AdminMusic(userName string, list []*database.Music, errorMsg string) templ.Component {
	return component(func(w io.Writer) error {
		ew := &errWriter{w: w}
		writeDocumentHead(ew, "Musik", "page-admin-music")

		ew.printf(`<header class="site-header"><h1>Musik</h1><p>%s</p>
<nav><a href="/admin">Admin</a></nav></header>
`, esc(userName))
		if errorMsg != "" {
			ew.printf(`<p class="error">%s</p>`+"\n", esc(errorMsg))
		}

		ew.write(`<form method="post" action="/admin/music/create" class="music-form">
<input type="text" name="title" placeholder="Judul" required>
<input type="text" name="artist" placeholder="Artis">
<input type="url" name="url" placeholder="URL (YouTube/Spotify/file)" required>
<label><input type="checkbox" name="active" value="true" checked> Aktif</label>
<button type="submit">Tambah</button>
</form>
<table class="music-list">
<tr><th>Judul</th><th>Artis</th><th>URL</th><th>Status</th><th></th></tr>
`)

		for _, m := range list {
			status := "Nonaktif"
			if m.Active {
				status = "Aktif"
			}
			ew.printf(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td>
<td><form method="post" action="/admin/music/delete" class="inline">
<input type="hidden" name="id" value="%s"><button type="submit">Hapus</button>
</form></td></tr>
`, esc(m.Title), esc(m.Artist.String), esc(m.URL), status, esc(m.ID))
		}

		ew.write("</table>\n")
		writeDocumentFoot(ew)
		return ew.err
	})
}
