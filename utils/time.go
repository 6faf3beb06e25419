package utils

import "time"

// ToBST converts a time to Bangladesh Standard Time
func ToBST(t time.Time) time.Time {
	bst, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		return t // Fallback to UTC if BST is not available
	}
	return t.In(bst)
}
