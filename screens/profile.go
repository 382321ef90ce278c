package screens

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"createscale/api"
	"createscale/models"
	"createscale/session"
)

// ProfileScreen is the viewer's own profile editor plus upload management.
type ProfileScreen struct {
	store   *session.Store
	api     *api.Client
	term    *Terminal
	profile *models.Profile
}

func NewProfileScreen(store *session.Store, client *api.Client, term *Terminal) *ProfileScreen {
	return &ProfileScreen{store: store, api: client, term: term}
}

func (s *ProfileScreen) Run(ctx context.Context) {
	profile, err := s.api.MyProfile(ctx, s.store.Token())
	if err != nil {
		s.term.Error(err)
		return
	}
	s.profile = profile

	for {
		s.render()
		s.term.Println("  [e] edit  [u] uploads  [b] back")
		choice, err := s.term.Prompt("Profile")
		if err != nil {
			return
		}

		switch choice {
		case "e":
			s.edit(ctx)
		case "u":
			s.uploads(ctx)
		case "b", "":
			return
		default:
			s.term.Println("Unknown choice.")
		}
	}
}

func (s *ProfileScreen) render() {
	p := s.profile
	s.term.Println()
	s.term.Printf("%s\n", p.Username)
	s.term.Printf("Profession: %s\n", p.Profession)
	s.term.Printf("Bio: %s\n", p.Bio)
	s.term.Printf("Performer: %v — Hires performers: %v\n", p.IsPerformer, p.IsPotentialClient)
	if p.IsPotentialClient {
		switch {
		case p.ClientBlacklisted:
			s.term.Println("Hiring: blocked")
		case !p.ClientApproved:
			s.term.Println("Hiring: awaiting admin approval")
		default:
			s.term.Println("Hiring: approved")
		}
	}
	if p.ProfilePictureURL != "" {
		s.term.Printf("Picture: %s\n", p.ProfilePictureURL)
	}
}

// edit prompts for each editable field; empty input keeps the current value.
func (s *ProfileScreen) edit(ctx context.Context) {
	update := models.ProfileUpdate{
		Bio:               s.profile.Bio,
		Profession:        s.profile.Profession,
		IsPerformer:       s.profile.IsPerformer,
		IsPotentialClient: s.profile.IsPotentialClient,
	}

	if v, err := s.term.Prompt("Bio (empty keeps current)"); err == nil && v != "" {
		update.Bio = v
	} else if err != nil {
		return
	}
	if v, err := s.term.Prompt("Profession (empty keeps current)"); err == nil && v != "" {
		update.Profession = v
	} else if err != nil {
		return
	}
	update.IsPerformer = s.term.Confirm("Available for hire as a performer?")
	update.IsPotentialClient = s.term.Confirm("Do you hire performers?")

	profile, err := s.api.UpdateMyProfile(ctx, s.store.Token(), update)
	if err != nil {
		s.term.Error(err)
		return
	}
	s.profile = profile
	s.term.Println("Profile updated.")
}

func (s *ProfileScreen) uploads(ctx context.Context) {
	token := s.store.Token()
	uploads, err := s.api.MyUploads(ctx, token)
	if err != nil {
		s.term.Error(err)
		return
	}

	s.term.Println()
	s.term.Println("Uploads")
	if len(uploads) == 0 {
		s.term.Println("  (none)")
	}
	for i, u := range uploads {
		url := u.ImageURL
		if url == "" {
			url = u.VideoURL
		}
		s.term.Printf("  [%d] %s (%s) — %s\n", i+1, url, u.UploadDate, u.Caption)
	}
	s.term.Println("  [a] add  [d#] delete  [b] back")

	choice, err := s.term.Prompt("Uploads")
	if err != nil {
		return
	}
	switch {
	case choice == "a":
		s.addUpload(ctx)
	case strings.HasPrefix(choice, "d"):
		idx, convErr := strconv.Atoi(strings.TrimPrefix(choice, "d"))
		if convErr != nil || idx < 1 || idx > len(uploads) {
			s.term.Println("Unknown choice.")
			return
		}
		if !s.term.Confirm("Delete this upload?") {
			return
		}
		if err := s.api.DeleteUpload(ctx, token, uploads[idx-1].ID); err != nil {
			s.term.Error(err)
			return
		}
		s.term.Println("Deleted.")
	}
}

func (s *ProfileScreen) addUpload(ctx context.Context) {
	path, err := s.term.Prompt("File path")
	if err != nil || path == "" {
		return
	}
	kind, err := s.term.Prompt("Kind (image/video)")
	if err != nil {
		return
	}
	caption, err := s.term.Prompt("Caption (optional)")
	if err != nil {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		s.term.Error(err)
		return
	}
	defer file.Close()

	upload, err := s.api.CreateUpload(ctx, s.store.Token(), kind, filepath.Base(path), caption, file)
	if err != nil {
		s.term.Error(err)
		return
	}
	s.term.Printf("Uploaded #%d.\n", upload.ID)
}
