package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mshakil/ictportal/internal/models"
)

// publicRegions are the affordances the public site header exposes on
// every page.
var publicRegions = []string{"home", "faculty", "about", "login"}

// Home renders the public landing page.
func Home() Page {
	hero := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Empowering the Future Through Technology"),
		"",
		subtleStyle.Render("Welcome to the official portal of the ICT Department."),
		subtleStyle.Render("Discover our research, meet our faculty, and stay updated"),
		subtleStyle.Render("with the latest innovations."),
	)

	features := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			accentStyle.Render("Student Success"),
			subtleStyle.Render("World-class education and\nmentorship for the next\ngeneration of tech leaders."),
		)),
		" ",
		panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			accentStyle.Render("Research & Innovation"),
			subtleStyle.Render("Groundbreaking research in\nAI, Networks, and Software\nEngineering."),
		)),
		" ",
		panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			accentStyle.Render("Global Community"),
			subtleStyle.Render("A diverse community of\nscholars connected to the\nglobal tech ecosystem."),
		)),
	)

	return Page{
		Title:   "Home",
		Body:    lipgloss.JoinVertical(lipgloss.Left, hero, "", features),
		Regions: publicRegions,
	}
}

// About renders the public about page: mission, history, and headline
// department numbers.
func About() Page {
	var b strings.Builder

	b.WriteString(titleStyle.Render("About Our Department"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Pioneering education and research in Information and Communication Technology since 2003."))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Our Mission"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("To produce globally competent ICT professionals through quality education,\nresearch, and innovation."))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Our Journey"))
	b.WriteString("\n")
	for _, step := range []struct {
		year, event string
	}{
		{"2003", "Department established with the first batch of 40 students"},
		{"2010", "M.Sc. program launched"},
		{"2018", "International accreditation achieved"},
		{"2025", "Digital transformation: integrated portal launched"},
	} {
		b.WriteString(fmt.Sprintf("  %s  %s\n", accentStyle.Render(step.year), step.event))
	}

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render("800+ Graduates"),
		" ",
		panelStyle.Render("25+ Faculty Members"),
		" ",
		panelStyle.Render("10+ Research Labs"),
	)
	b.WriteString("\n")
	b.WriteString(stats)

	return Page{Title: "About", Body: b.String(), Regions: publicRegions}
}

// FacultyList renders the public faculty page: the chairman section first,
// then the faculty grid. Either part may be absent.
func FacultyList(chairman *models.User, faculty []models.User) Page {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Faculty Members"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Meet our dedicated teaching and research staff"))
	b.WriteString("\n")

	regions := append([]string{}, publicRegions...)

	if chairman != nil {
		b.WriteString(headingStyle.Render("Chairman"))
		b.WriteString("\n")
		b.WriteString(facultyCard(*chairman))
		b.WriteString("\n")
		regions = append(regions, fmt.Sprintf("view %d", chairman.Id))
	}

	b.WriteString(headingStyle.Render("Faculty"))
	b.WriteString("\n")
	if len(faculty) == 0 {
		b.WriteString(subtleStyle.Render("No faculty records yet."))
		b.WriteString("\n")
	}
	for _, u := range faculty {
		b.WriteString(facultyCard(u))
		b.WriteString("\n")
		regions = append(regions, fmt.Sprintf("view %d", u.Id))
	}

	return Page{Title: "Faculty", Body: b.String(), Regions: regions}
}

func facultyCard(u models.User) string {
	designation := u.Designation
	if designation == "" {
		designation = "Faculty Member"
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s  %s", tagStyle.Render(initials(u.Name)), titleStyle.Render(u.Name)),
		accentStyle.Render(designation),
		subtleStyle.Render(u.Department),
		subtleStyle.Render(u.Email),
	))
}

// FacultyProfile renders the deep-linkable public profile page for one
// record.
func FacultyProfile(u models.User) Page {
	var b strings.Builder

	b.WriteString(titleStyle.Render(u.Name))
	b.WriteString("\n")
	b.WriteString(accentStyle.Render(u.Designation))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(u.Department))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(u.Email))
	b.WriteString("\n")
	if u.CV != "" {
		b.WriteString(subtleStyle.Render("CV available for download"))
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("About"))
	b.WriteString("\n")
	bio := u.Bio
	if bio == "" {
		bio = "No biography provided."
	}
	b.WriteString(bio)
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Education"))
	b.WriteString("\n")
	b.WriteString(orNA(u.Education))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Research Interests"))
	b.WriteString("\n")
	if u.Research == "" {
		b.WriteString(orNA(""))
		b.WriteString("\n")
	} else {
		for _, topic := range strings.Split(u.Research, ",") {
			b.WriteString("  • " + strings.TrimSpace(topic) + "\n")
		}
	}

	b.WriteString(headingStyle.Render("Publications"))
	b.WriteString("\n")
	b.WriteString(publicationSection("Journal Papers", u.Publications.Journal))
	b.WriteString(publicationSection("Conference Papers", u.Publications.Conference))

	b.WriteString(headingStyle.Render("Professional & Other Experiences"))
	b.WriteString("\n")
	b.WriteString(experienceSection(u))

	return Page{
		Title:   u.Name,
		Body:    b.String(),
		Regions: append([]string{"back"}, publicRegions...),
	}
}

func publicationSection(heading string, pubs []models.Publication) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render(heading))
	b.WriteString("\n")
	if len(pubs) == 0 {
		b.WriteString(subtleStyle.Render("  None listed."))
		b.WriteString("\n")
		return b.String()
	}
	for _, p := range pubs {
		year := p.Year
		if year == "" {
			year = "----"
		}
		line := fmt.Sprintf("  %s  %s", accentStyle.Render(year), p.Text)
		if p.Link != "" {
			line += "  " + subtleStyle.Render(p.Link)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func experienceSection(u models.User) string {
	exp := u.Experiences
	switch {
	case exp.IsLegacy():
		return exp.Legacy + "\n"
	case len(exp.Entries) > 0:
		var b strings.Builder
		for _, e := range exp.Entries {
			span := e.Start
			if e.End != "" {
				span += " – " + e.End
			}
			b.WriteString(fmt.Sprintf("  %s, %s  %s\n", e.Position, e.Institution, subtleStyle.Render(span)))
		}
		return b.String()
	default:
		var b strings.Builder
		if u.Designation != "" {
			b.WriteString("  Current: " + u.Designation + "\n")
		}
		if u.Department != "" {
			b.WriteString("  Department: " + u.Department + "\n")
		}
		if b.Len() == 0 {
			b.WriteString(subtleStyle.Render("  None listed."))
			b.WriteString("\n")
		}
		return b.String()
	}
}

// Login renders the sign-in page. When failed is true the inline
// invalid-credentials notice is shown; the page otherwise stays the same,
// so a failed attempt returns the user right where they were.
func Login(failed bool) Page {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Portal Login"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Restricted Access"))
	b.WriteString("\n")
	if failed {
		b.WriteString(errorStyle.Render("Invalid credentials"))
		b.WriteString("\n")
	}
	return Page{Title: "Login", Body: b.String(), Regions: []string{"signin", "back"}}
}

func orNA(s string) string {
	if s == "" {
		return subtleStyle.Render("N/A")
	}
	return s
}
