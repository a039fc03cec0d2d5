package view

type NavLink struct {
	Path   string
	Label  string
	Active bool
}

var navLinks = []NavLink{
	{Path: "/", Label: "HOME"},
	{Path: "/how-it-works", Label: "HOW IT WORKS"},
	{Path: "/find-jobs", Label: "FIND JOBS"},
	{Path: "/post-job", Label: "POST A JOB"},
	{Path: "/pricing", Label: "PRICING"},
	{Path: "/safety", Label: "SAFETY & TRUST"},
	{Path: "/contact", Label: "CONTACT"},
}

// NavLinks returns the header navigation with the link for path marked active.
func NavLinks(path string) []NavLink {
	out := make([]NavLink, len(navLinks))
	for i, l := range navLinks {
		l.Active = l.Path == path
		out[i] = l
	}
	return out
}
