// Package profile loads the site owner's profile data from JSON.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
)

// Profile is the data behind the about page, read from the profile JSON file.
type Profile struct {
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Location   string       `json:"location"`
	Bio        string       `json:"bio"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Interests  []string     `json:"interests"`
	Contact    Contact      `json:"contact"`
	Updated    string       `json:"updated"`
}

// Experience is one entry in the work history.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Contact holds the ways to reach the site owner.
type Contact struct {
	Email   string `json:"email"`
	Website string `json:"website"`
	GitHub  string `json:"github"`
}

// Placeholder returns the profile used when the real data cannot be loaded,
// so the about page still renders.
func Placeholder() *Profile {
	return &Profile{
		Name: "Error Loading Data",
		Bio:  "Failed to load about information.",
	}
}

// Load reads and parses the profile JSON at path. When the file is missing,
// unreadable, or malformed it returns Placeholder together with the error;
// the returned profile is never nil, so generation can continue with the
// error reported as a warning.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Placeholder(), fmt.Errorf("reading profile %s: %w", path, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Placeholder(), fmt.Errorf("parsing profile %s: %w", path, err)
	}

	return &p, nil
}
