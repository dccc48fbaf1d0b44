package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mshakil/ictportal/internal/models"
)

// adminRegions returns the sidebar affordances for the signed-in actor.
// The user-management entry only exists for admins; the router refuses the
// navigation independently of this list.
func adminRegions(actor models.User) []string {
	regions := []string{"overview", "profile"}
	if actor.Role == models.RoleAdmin {
		regions = append(regions, "users")
	}
	return append(regions, "logout")
}

type stat struct {
	label string
	value string
}

// Overview renders the dashboard landing page with role-dependent stat
// cards.
func Overview(actor models.User, totalUsers int, now time.Time) Page {
	var stats []stat
	if actor.Role == models.RoleAdmin {
		stats = []stat{
			{"Total Users", fmt.Sprintf("%d", totalUsers)},
			{"System Status", "Online"},
			{"Pending Requests", "0"},
		}
	} else {
		department := actor.Department
		if department == "" {
			department = "N/A"
		}
		stats = []stat{
			{"Profile Status", "Active"},
			{"Department", department},
		}
	}

	cards := make([]string, 0, len(stats))
	for _, s := range stats {
		cards = append(cards, panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			subtleStyle.Render(s.label),
			titleStyle.Render(s.value),
		)), " ")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Dashboard Overview"),
		subtleStyle.Render(now.Format("Monday, January 2, 2006")),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		fmt.Sprintf("Welcome back, %s", accentStyle.Render(actor.Name)),
		subtleStyle.Render("This is your secure department portal. You can manage your profile,\nview department updates, and access internal resources."),
	)

	return Page{Title: "Overview", Body: body, Regions: adminRegions(actor)}
}

// Profile renders the signed-in actor's profile as the editor shows it
// before any prompt: current values, attachment state, and publications in
// the plain-text line format.
func Profile(actor models.User) Page {
	var b strings.Builder

	b.WriteString(titleStyle.Render("My Profile"))
	b.WriteString("\n")

	rows := []struct {
		label, value string
	}{
		{"Name", actor.Name},
		{"Email", actor.Email + subtleStyle.Render(" (read-only)")},
		{"Designation", orNA(actor.Designation)},
		{"Department", orNA(actor.Department)},
		{"Education", orNA(actor.Education)},
		{"Research", orNA(actor.Research)},
		{"Bio", orNA(actor.Bio)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", subtleStyle.Render(row.label), row.value))
	}

	b.WriteString(fmt.Sprintf("  %-12s %s\n", subtleStyle.Render("Photo"), attachmentState(actor.Photo, "uploaded (max 1MB, image)")))
	b.WriteString(fmt.Sprintf("  %-12s %s\n", subtleStyle.Render("CV"), attachmentState(actor.CV, "uploaded (max 2MB, pdf/doc/docx)")))

	b.WriteString(headingStyle.Render("Experiences"))
	b.WriteString("\n")
	b.WriteString(experienceSection(actor))

	b.WriteString(headingStyle.Render("Publications (plain text)"))
	b.WriteString("\n")
	b.WriteString(accentStyle.Render("Journal"))
	b.WriteString("\n")
	b.WriteString(indentLines(models.FormatPublicationLines(actor.Publications.Journal)))
	b.WriteString(accentStyle.Render("Conference"))
	b.WriteString("\n")
	b.WriteString(indentLines(models.FormatPublicationLines(actor.Publications.Conference)))

	regions := append(adminRegions(actor), "edit")
	return Page{Title: "My Profile", Body: b.String(), Regions: regions}
}

func attachmentState(dataURI, present string) string {
	if dataURI == "" {
		return subtleStyle.Render("none")
	}
	return present
}

func indentLines(s string) string {
	if s == "" {
		return subtleStyle.Render("  (none)") + "\n"
	}
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

// Users renders the user-management table. The signed-in actor's own row
// is marked current instead of offering deletion.
func Users(actor models.User, all []models.User) Page {
	var b strings.Builder

	b.WriteString(titleStyle.Render("User Management"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Manage system access and roles"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %-4s %-20s %-26s %-8s %s\n",
		subtleStyle.Render("ID"),
		subtleStyle.Render("Name"),
		subtleStyle.Render("Email"),
		subtleStyle.Render("Role"),
		subtleStyle.Render("Department")))

	regions := append(adminRegions(actor), "add")
	for _, u := range all {
		marker := ""
		if u.Id == actor.Id {
			marker = subtleStyle.Render(" (current)")
		} else {
			regions = append(regions, fmt.Sprintf("del %d", u.Id))
		}
		b.WriteString(fmt.Sprintf("  %-4d %-20s %-26s %-8s %s%s\n",
			u.Id, u.Name, u.Email, tagStyle.Render(string(u.Role)), u.Department, marker))
	}

	return Page{Title: "User Management", Body: b.String(), Regions: regions}
}
