package blog

// Blog is the persistent blog post model. The id is assigned by the
// repository on create and never changes afterwards.
type Blog struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Title   string `json:"title" bson:"title"`
	Author  string `json:"author" bson:"author"`
	Content string `json:"content" bson:"content"`
}

// Update carries a partial update. Nil fields are left untouched in the
// stored document; only non-nil fields are written.
type Update struct {
	Title   *string `json:"title,omitempty" bson:"title,omitempty"`
	Author  *string `json:"author,omitempty" bson:"author,omitempty"`
	Content *string `json:"content,omitempty" bson:"content,omitempty"`
}
