package lessons

import "github.com/sahilm/fuzzy"

// Search does a fuzzy match of lessons by title, best matches first.
// An empty query returns the full curriculum in teaching order.
func Search(query string) []Lesson {
	all := Curriculum()
	if query == "" {
		return all
	}

	titles := make([]string, len(all))
	for i, l := range all {
		titles[i] = l.Title
	}

	matches := fuzzy.Find(query, titles)

	var result []Lesson
	for _, match := range matches {
		result = append(result, all[match.Index])
	}
	return result
}
