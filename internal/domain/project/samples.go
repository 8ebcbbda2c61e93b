package project

import "time"

var (
	alexJohnson = TeamMember{ID: 1, Name: "Alex Johnson", Avatar: "AJ", Color: "bg-primary"}
	mariaGarcia = TeamMember{ID: 2, Name: "Maria Garcia", Avatar: "MG", Color: "bg-secondary"}
	samLee      = TeamMember{ID: 3, Name: "Sam Lee", Avatar: "SL", Color: "bg-accent"}
	davidKim    = TeamMember{ID: 4, Name: "David Kim", Avatar: "DK", Color: "bg-green-500"}
	emmaWilson  = TeamMember{ID: 5, Name: "Emma Wilson", Avatar: "EW", Color: "bg-purple-500"}
	jamesBrown  = TeamMember{ID: 6, Name: "James Brown", Avatar: "JB", Color: "bg-yellow-500"}
)

// SampleProjects returns the demo dashboard with due dates relative to now.
func SampleProjects(now time.Time) []Project {
	day := 24 * time.Hour
	return []Project{
		{
			Title:          "Website Redesign",
			Description:    "Redesign the company website with modern UI/UX principles",
			Status:         StatusInProgress,
			Priority:       PriorityHigh,
			DueDate:        now.Add(7 * day),
			Progress:       65,
			Tasks:          12,
			CompletedTasks: 8,
			Team:           []TeamMember{alexJohnson, mariaGarcia, samLee},
		},
		{
			Title:          "Mobile App Development",
			Description:    "Develop a cross-platform mobile application for customer engagement",
			Status:         StatusPlanning,
			Priority:       PriorityMedium,
			DueDate:        now.Add(14 * day),
			Progress:       25,
			Tasks:          20,
			CompletedTasks: 5,
			Team:           []TeamMember{mariaGarcia, davidKim},
		},
		{
			Title:          "Marketing Campaign",
			Description:    "Q3 digital marketing campaign for product launch",
			Status:         StatusCompleted,
			Priority:       PriorityMedium,
			DueDate:        now.Add(-3 * day),
			Progress:       100,
			Tasks:          15,
			CompletedTasks: 15,
			Team:           []TeamMember{alexJohnson, emmaWilson},
		},
		{
			Title:          "Database Migration",
			Description:    "Migrate legacy database to new cloud infrastructure",
			Status:         StatusOnHold,
			Priority:       PriorityUrgent,
			DueDate:        now.Add(2 * day),
			Progress:       40,
			Tasks:          18,
			CompletedTasks: 7,
			Team:           []TeamMember{samLee, jamesBrown},
		},
	}
}
