package lessons

import "strings"

// protectedFragments are path pieces that identify operating-system
// directories. Running init inside one always fails (or worse,
// succeeds), so the init lesson refuses them up front.
var protectedFragments = []string{
	`\windows`,
	`\system32`,
	`\program files`,
	`\program files (x86)`,
	`\appdata`,
	"/usr/",
	"/etc/",
	"/bin/",
	"/sbin/",
	"/system/",
}

// IsProtectedPath reports whether path points into a system directory
// that must never become a repository.
func IsProtectedPath(path string) bool {
	lower := strings.ToLower(path)
	for _, fragment := range protectedFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
