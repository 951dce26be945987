package catalog

// Static site content served alongside the sheet-backed data. Same contract
// as the fallback accessors: fresh values, no I/O, never fails.

type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func TeamMembers() []TeamMember {
	return []TeamMember{
		{
			Name:  "Claudia Quispe",
			Role:  "Manager",
			Image: "/team/member-1.png",
			Bio:   "A culinary expert specializing in traditional Bolivian cuisine with a modern twist.",
		},
		{
			Name:  "Mateo Flores",
			Role:  "Co-Founder & Historian",
			Image: "/team/team-2.jpg",
			Bio:   "A professor of Bolivian history who curates our cultural events and historical displays.",
		},
		{
			Name:  "Camila Rojas",
			Role:  "Head Barista",
			Image: "/team/team-3.jpg",
			Bio:   "An award-winning coffee specialist with a passion for highlighting Bolivian coffee beans.",
		},
		{
			Name:  "Diego Vargas",
			Role:  "Events Coordinator",
			Image: "/team/team-4.jpg",
			Bio:   "A community organizer who manages our diverse calendar of cultural and educational events.",
		},
	}
}

func Testimonials() []Testimonial {
	return []Testimonial{
		{
			ID:      1,
			Name:    "Maria Rodriguez",
			Role:    "Local Artist",
			Content: "El Parlamento is my favorite spot to sketch and sip. Every corner of the space tells a story about Bolivia's history.",
			Rating:  5,
		},
		{
			ID:      2,
			Name:    "Carlos Mendoza",
			Role:    "University Professor",
			Content: "I bring my students here regularly for discussions. The combination of excellent coffee, thoughtful space design, and cultural significance makes it the perfect place for academic dialogue.",
			Rating:  5,
		},
		{
			ID:      3,
			Name:    "Sofia Vargas",
			Role:    "Food Blogger",
			Content: "The menu at El Parlamento beautifully represents Bolivia's culinary heritage with modern execution. Their 'Huayño Cappuccino' is a must-try for any coffee enthusiast visiting La Paz.",
			Rating:  5,
		},
		{
			ID:      4,
			Name:    "Javier Morales",
			Role:    "Tourist from Argentina",
			Content: "Stumbled upon this gem during my trip to Bolivia. The staff took time to explain the historical significance behind each dish and drink. A truly immersive cultural experience!",
			Rating:  4,
		},
	}
}
