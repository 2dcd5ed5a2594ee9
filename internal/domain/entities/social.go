package entities

import "strings"

// Social is a contact link shown in the footer.
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	// Icon is an Iconify id such as "mdi:github".
	Icon string `json:"icon,omitempty"`
}

func (s Social) IsEmail() bool {
	return strings.HasPrefix(strings.ToLower(s.URL), "mailto:")
}

// Address returns the mailbox of a mailto link, or "".
func (s Social) Address() string {
	if !s.IsEmail() {
		return ""
	}
	addr := s.URL[len("mailto:"):]
	if i := strings.IndexByte(addr, '?'); i >= 0 {
		addr = addr[:i]
	}
	return addr
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
