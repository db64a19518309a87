package domain

// Label is one repository label to bootstrap before issues reference it.
type Label struct {
	Name        string `toml:"name"`
	Color       string `toml:"color"`
	Description string `toml:"description"`
}

// Milestone is one repository milestone to bootstrap. DueOn is an RFC 3339
// timestamp as expected by the tracker API.
type Milestone struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	DueOn       string `toml:"due_on"`
}

// Catalog bundles the labels and milestones created during bootstrap.
type Catalog struct {
	Labels     []Label     `toml:"labels"`
	Milestones []Milestone `toml:"milestones"`
}

// DefaultCatalog returns the built-in label and milestone catalogs. An
// optional catalog file may replace either list wholesale.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Labels: []Label{
			// Priority
			{Name: "priority:high", Color: "d73a4a", Description: "High priority task"},
			{Name: "priority:medium", Color: "fbca04", Description: "Medium priority task"},
			{Name: "priority:low", Color: "0e8a16", Description: "Low priority task"},
			// Phase
			{Name: "phase:1", Color: "1f77b4", Description: "Phase 1 task"},
			{Name: "phase:2", Color: "ff7f0e", Description: "Phase 2 task"},
			{Name: "phase:3", Color: "2ca02c", Description: "Phase 3 task"},
			{Name: "phase:4", Color: "d62728", Description: "Phase 4 task"},
			// Status
			{Name: "status:todo", Color: "e4e669", Description: "Task not started"},
			{Name: "status:in-progress", Color: "0052cc", Description: "Task in progress"},
			{Name: "status:closed", Color: "0e8a16", Description: "Task completed"},
			{Name: "status:blocked", Color: "d73a4a", Description: "Task blocked"},
			// Automation
			{Name: "automation:manus", Color: "8b5cf6", Description: "Can be automated by Manus"},
			{Name: "automation:human", Color: "f59e0b", Description: "Requires human intervention"},
			{Name: "automation:split", Color: "06b6d4", Description: "Mixed automation and human tasks"},
			// Role
			{Name: "role:technical-lead", Color: "ff6b6b", Description: "Technical Lead tasks"},
			{Name: "role:ai-ml-engineer", Color: "4ecdc4", Description: "AI/ML Engineer tasks"},
			{Name: "role:frontend-developer", Color: "45b7d1", Description: "Frontend Developer tasks"},
			{Name: "role:product-manager", Color: "f9ca24", Description: "Product Manager tasks"},
			{Name: "role:devops-engineer", Color: "6c5ce7", Description: "DevOps Engineer tasks"},
			// Generic
			{Name: "task", Color: "7057ff", Description: "General task"},
		},
		Milestones: []Milestone{
			{
				Title:       "Phase 1: Core Backend Development",
				Description: "Foundation setup and core processing functions",
				DueOn:       "2025-08-14T23:59:59Z",
			},
			{
				Title:       "Phase 2: WhatsApp Integration",
				Description: "WhatsApp integration and enhanced features",
				DueOn:       "2025-09-13T23:59:59Z",
			},
			{
				Title:       "Phase 3: Multi-Platform Expansion",
				Description: "Google Assistant integration and legacy features",
				DueOn:       "2025-11-07T23:59:59Z",
			},
			{
				Title:       "Phase 4: Advanced AI and Launch",
				Description: "Machine learning integration and production launch",
				DueOn:       "2025-12-30T23:59:59Z",
			},
		},
	}
}
