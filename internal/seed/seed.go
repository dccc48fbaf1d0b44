// Package seed holds the initial directory fixture the portal falls back to
// when no stored directory exists (or the stored one cannot be read).
package seed

import "github.com/mshakil/ictportal/internal/models"

// Users returns a fresh copy of the initial directory: one administrator
// (the department chairman on the public site) and four faculty records.
// Credentials are illustrative mock data.
func Users() []models.User {
	return []models.User{
		{
			Id:          1,
			Name:        "System Admin",
			Email:       "admin@ict.com",
			Password:    "admin123",
			Role:        models.RoleAdmin,
			Designation: "System Administrator",
			Department:  "ICT Core",
			Bio:         "Head of ICT Department. Responsible for system maintenance and security.",
			Education:   "M.Sc. in Computer Science",
			Research:    "Network Security, Cloud Computing",
		},
		{
			Id:          2,
			Name:        "John Doe",
			Email:       "john.doe@ict.com",
			Password:    "user123",
			Role:        models.RoleUser,
			Designation: "Senior Lecturer",
			Department:  "Computer Science",
			Bio:         "Passionate about teaching algorithms and data structures.",
			Education:   "Ph.D. in Artificial Intelligence",
			Research:    "Machine Learning, Neural Networks",
		},
		{
			Id:          3,
			Name:        "Sarah Smith",
			Email:       "sarah.smith@ict.com",
			Password:    "user123",
			Role:        models.RoleUser,
			Designation: "Assistant Professor",
			Department:  "Software Engineering",
			Bio:         "Focusing on software quality assurance and testing methodologies.",
			Education:   "M.Sc. in Software Engineering",
			Research:    "Software Testing, Agile Methodologies",
		},
		{
			Id:          4,
			Name:        "Michael Brown",
			Email:       "michael.b@ict.com",
			Password:    "user123",
			Role:        models.RoleUser,
			Designation: "Lab Instructor",
			Department:  "Networks",
			Bio:         "Managing the CCNA network lab and student projects.",
			Education:   "B.Sc. in Computer Networks",
			Research:    "IoT, Wireless Sensor Networks",
		},
		{
			Id:          5,
			Name:        "Emily Davis",
			Email:       "emily.d@ict.com",
			Password:    "user123",
			Role:        models.RoleUser,
			Designation: "Research Assistant",
			Department:  "Data Science",
			Bio:         "Working on big data analytics projects.",
			Education:   "B.Sc. in Statistics",
			Research:    "Big Data, Data Visualization",
		},
	}
}
