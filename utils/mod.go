package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// FindLastIndex scans from the end of the slice
func FindLastIndex[T comparable](slice []T, item T) int {
	for i := len(slice) - 1; i >= 0; i-- {
		if slice[i] == item {
			return i
		}
	}
	return -1
}

func CountFunc[T any](slice []T, match func(T) bool) int {
	count := 0
	for _, v := range slice {
		if match(v) {
			count++
		}
	}
	return count
}
