package sections

// defaultContent returns the placeholder content seeded for a fresh
// installation. The team section has no default: it renders from the
// team members collection instead.
func defaultContent() map[Type]map[string]any {
	return map[Type]map[string]any{
		TypeHero: {
			"title":       "Full Stack Developer",
			"subtitle":    "Building Modern Web Applications",
			"description": "I create beautiful, functional, and user-friendly websites and applications using cutting-edge technologies.",
			"ctaText":     "View My Work",
			"ctaUrl":      "#portfolio",
			"socialLinks": map[string]any{
				"github":   "https://github.com/yourusername",
				"linkedin": "https://linkedin.com/in/yourusername",
				"email":    "your.email@example.com",
			},
		},
		TypeAbout: {
			"title":     "About Me",
			"biography": "I'm a passionate full-stack developer with experience in modern web technologies. I love creating efficient, scalable applications that solve real-world problems.",
			"skills":    []any{"JavaScript", "TypeScript", "React", "Next.js", "Node.js", "Python", "SQL", "MongoDB"},
			"experience": []any{
				map[string]any{
					"company":     "Your Company",
					"role":        "Full Stack Developer",
					"duration":    "2022 - Present",
					"description": "Led development of multiple web applications using React and Node.js",
				},
			},
			"certifications": []any{},
		},
		TypeTools: {
			"title": "Tools & Technologies",
			"categories": []any{
				map[string]any{
					"name": "Frontend",
					"tools": []any{
						map[string]any{"name": "React", "proficiency": 90},
						map[string]any{"name": "Next.js", "proficiency": 85},
						map[string]any{"name": "TypeScript", "proficiency": 80},
						map[string]any{"name": "Tailwind CSS", "proficiency": 85},
					},
				},
				map[string]any{
					"name": "Backend",
					"tools": []any{
						map[string]any{"name": "Node.js", "proficiency": 85},
						map[string]any{"name": "Express", "proficiency": 80},
						map[string]any{"name": "PostgreSQL", "proficiency": 75},
						map[string]any{"name": "MongoDB", "proficiency": 70},
					},
				},
			},
		},
		TypeContact: {
			"title":       "Get In Touch",
			"description": "I'm always open to discussing new opportunities and interesting projects.",
			"email":       "your.email@example.com",
			"socialLinks": map[string]any{
				"github":   "https://github.com/yourusername",
				"linkedin": "https://linkedin.com/in/yourusername",
			},
		},
		TypeFooter: {
			"copyrightText": "© 2024 Your Name. All rights reserved.",
			"links": []any{
				map[string]any{"name": "Privacy Policy", "url": "/privacy"},
				map[string]any{"name": "Terms of Service", "url": "/terms"},
			},
		},
	}
}
