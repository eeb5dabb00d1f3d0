package skills

import "strings"

// Add appends the trimmed tag unless it is empty or already present.
func Add(list []string, tag string) ([]string, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" || Contains(list, tag) {
		return list, false
	}
	return append(list, tag), true
}

func Remove(list []string, tag string) []string {
	result := make([]string, 0, len(list))
	for _, item := range list {
		if item != tag {
			result = append(result, item)
		}
	}
	return result
}

func Contains(list []string, tag string) bool {
	for _, item := range list {
		if item == tag {
			return true
		}
	}
	return false
}

// Normalize trims every tag and drops blanks and repeats, keeping first-seen order.
func Normalize(list []string) []string {
	result := make([]string, 0, len(list))
	for _, tag := range list {
		result, _ = Add(result, tag)
	}
	return result
}
