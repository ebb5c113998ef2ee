// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import "geniewp/internal/models"

// MenuName is the navigation menu the CMS creates for the starter pages.
const MenuName = "Primary Menu"

// Page is one starter page the CMS inserts after the theme is activated.
type Page struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Content  string `json:"content"`
	Template string `json:"template,omitempty"`
	Role     string `json:"role,omitempty"` // "front" or "posts"
}

// InitialContent is the bootstrap bundle for a generated theme: pages in
// menu order plus the menu that links them.
type InitialContent struct {
	Pages        []Page `json:"pages"`
	MenuName     string `json:"menu_name"`
	MenuLocation string `json:"menu_location"`
}

type pageImages struct {
	Home, About, Services, Blog, Contact string
}

type contactItem struct {
	Label string
	Value string
}

var defaultPageImages = pageImages{
	Home:     "https://images.unsplash.com/photo-1497366216548-37526070297c?w=1920&h=600&fit=crop",
	About:    "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=1920&h=400&fit=crop",
	Services: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1920&h=400&fit=crop",
	Blog:     "https://images.unsplash.com/photo-1499750310107-5fef28a66643?w=1920&h=400&fit=crop",
	Contact:  "https://images.unsplash.com/photo-1423666639041-f56000c27a9a?w=1920&h=400&fit=crop",
}

var serviceImages = []string{
	"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1551434678-e076c223a692?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1552664730-d307ca884978?w=400&h=300&fit=crop",
	"https://images.unsplash.com/photo-1553877522-43269d4ea984?w=400&h=300&fit=crop",
}

func serviceImage(i int) string {
	return serviceImages[i%len(serviceImages)]
}

// Pages renders the starter pages for td: Home (front page), About,
// Services, Blog (posts page) and Contact.
func Pages(td models.ThemeData) InitialContent {
	v := newView(td, 0)
	return InitialContent{
		Pages: []Page{
			{Title: "Home", Slug: "home", Content: execute("home.html.tmpl", v), Template: "front-page", Role: "front"},
			{Title: "About", Slug: "about", Content: execute("about.html.tmpl", v)},
			{Title: "Services", Slug: "services", Content: execute("services.html.tmpl", v)},
			{Title: "Blog", Slug: "blog", Content: execute("blog.html.tmpl", v), Role: "posts"},
			{Title: "Contact", Slug: "contact", Content: execute("contact.html.tmpl", v)},
		},
		MenuName:     MenuName,
		MenuLocation: "primary",
	}
}
