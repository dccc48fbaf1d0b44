package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mshakil/ictportal/internal/models"
	"github.com/mshakil/ictportal/internal/router"
)

// readPhoto and readCV are indirections used to facilitate testing.
var readPhoto = ReadPhoto
var readCV = ReadCV

// EditProfile walks the signed-in user through their profile fields.
// Pressing Enter on any prompt keeps the current value; entering "-"
// clears an optional field or removes an attachment. The directory and
// the persisted session are updated together on save.
func (a *App) EditProfile(ctx context.Context) error {
	actor, ok := a.sessions.Actor()
	if !ok || !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in to edit your profile.")
		return nil
	}

	patch := models.UpdateOf(actor)

	var err error
	if patch.Name, err = GetTextDefault(a.reader, "Full Name", patch.Name, a.out); err != nil {
		return err
	}
	if patch.Designation, err = GetTextDefault(a.reader, "Designation", patch.Designation, a.out); err != nil {
		return err
	}
	if patch.Department, err = GetTextDefault(a.reader, "Department", patch.Department, a.out); err != nil {
		return err
	}
	if patch.Bio, err = a.multilineDefault("Bio", patch.Bio); err != nil {
		return err
	}
	if patch.Education, err = a.multilineDefault("Education (one item per line)", patch.Education); err != nil {
		return err
	}
	if patch.Research, err = a.multilineDefault("Research Interests (one item per line)", patch.Research); err != nil {
		return err
	}

	if patch.Photo, err = a.attachment("Profile photo path", patch.Photo, readPhoto); err != nil {
		return err
	}
	if patch.CV, err = a.attachment("CV path", patch.CV, readCV); err != nil {
		return err
	}

	if patch.Experiences, err = a.editExperiences(patch.Experiences); err != nil {
		return err
	}

	if patch.Publications.Journal, err = a.editPublications("Journal publications", patch.Publications.Journal); err != nil {
		return err
	}
	if patch.Publications.Conference, err = a.editPublications("Conference publications", patch.Publications.Conference); err != nil {
		return err
	}

	if err := a.sessions.UpdateActor(ctx, patch); err != nil {
		return err
	}

	a.router.NavigateAdmin(ctx, router.PageMyProfile)
	fmt.Fprintln(a.out, "Saved successfully!")
	return nil
}

// multilineDefault shows the current value and reads a replacement.
// Enter on an empty first line keeps current; a single "-" clears it.
func (a *App) multilineDefault(prompt, current string) (string, error) {
	shown := "(empty)"
	if current != "" {
		shown = current
	}
	fmt.Fprintf(a.out, "%s — current:\n%s\n", prompt, shown)
	answer, err := GetMultiline(a.reader, "New value (Enter to keep, '-' to clear)", a.out)
	if err != nil {
		return "", err
	}
	switch answer {
	case "":
		return current, nil
	case "-":
		return "", nil
	default:
		return answer, nil
	}
}

// attachment prompts for a file path and loads it through read, which
// enforces the size and type limits. A rejected file keeps the current
// attachment.
func (a *App) attachment(prompt, current string, read func(string) (string, error)) (string, error) {
	state := "none"
	if current != "" {
		state = "uploaded"
	}
	path, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (Enter to keep, '-' to remove)", prompt, state), a.out)
	if err != nil {
		return "", err
	}
	switch path {
	case "":
		return current, nil
	case "-":
		return "", nil
	}
	uri, err := read(path)
	if err != nil {
		fmt.Fprintf(a.out, "Upload rejected: %v\n", err)
		return current, nil
	}
	return uri, nil
}

// editExperiences offers to replace the experience list with freshly
// entered rows. Declining keeps whatever is there, including a legacy
// free-text value.
func (a *App) editExperiences(current models.Experiences) (models.Experiences, error) {
	if current.IsLegacy() {
		fmt.Fprintf(a.out, "Experiences — current (free text):\n%s\n", current.Legacy)
	} else if len(current.Entries) > 0 {
		fmt.Fprintln(a.out, "Experiences — current:")
		for _, e := range current.Entries {
			fmt.Fprintf(a.out, "  %s, %s (%s–%s)\n", e.Position, e.Institution, e.Start, e.End)
		}
	}

	replace, err := Confirm(a.reader, "Replace experiences?", a.out)
	if err != nil {
		return models.Experiences{}, err
	}
	if !replace {
		return current, nil
	}

	var next models.Experiences
	for {
		position, err := getSimpleText(a.reader, "Position (Enter to finish)", a.out)
		if err != nil {
			return models.Experiences{}, err
		}
		if position == "" {
			break
		}
		institution, err := getSimpleText(a.reader, "Institution", a.out)
		if err != nil {
			return models.Experiences{}, err
		}
		start, err := getSimpleText(a.reader, "Start year", a.out)
		if err != nil {
			return models.Experiences{}, err
		}
		end, err := getSimpleText(a.reader, "End year (or Present)", a.out)
		if err != nil {
			return models.Experiences{}, err
		}
		next.Entries = append(next.Entries, models.Experience{
			Position:    position,
			Institution: institution,
			Start:       start,
			End:         end,
		})
	}
	return next, nil
}

// editPublications shows the current list in line form and reads a
// replacement. Enter keeps current; "-" clears the section.
func (a *App) editPublications(prompt string, current []models.Publication) ([]models.Publication, error) {
	shown := models.FormatPublicationLines(current)
	if shown == "" {
		shown = "(empty)"
	}
	fmt.Fprintf(a.out, "%s — current:\n%s\n", prompt, shown)
	answer, err := GetMultiline(a.reader, "New list, one '2024 - Title | link' per line (Enter to keep, '-' to clear)", a.out)
	if err != nil {
		return nil, err
	}
	switch strings.TrimSpace(answer) {
	case "":
		return current, nil
	case "-":
		return nil, nil
	default:
		return models.ParsePublicationLines(answer), nil
	}
}
