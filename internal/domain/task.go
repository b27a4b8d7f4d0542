package domain

// Task is a catalog entry created by the administrator. Its sequential
// string id is the key in the tasks collection.
type Task struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}
