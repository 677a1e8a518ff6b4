package cryptotrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Author is the display identity attached to a post or comment.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Comment is one reply on a post.
type Comment struct {
	Author    Author    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is one entry of the community feed. Likes and upvotes are plain
// counters backed by membership lists, so toggling twice restores both the
// count and the membership.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	Upvotes   int       `json:"upvotes"`
	LikedBy   []string  `json:"likedBy,omitempty"`
	UpvotedBy []string  `json:"upvotedBy,omitempty"`
	Comments  []Comment `json:"comments,omitempty"`
}

// ErrPostNotFound is returned when a post id does not exist in the feed.
var ErrPostNotFound = errors.New("post not found")

// Feed is the community post feed persisted in the store. The feed file is
// rewritten wholesale on mutation; concurrent writers follow last-write-wins.
type Feed struct {
	store *Store
}

// NewFeed creates a Feed backed by the given store.
func NewFeed(store *Store) *Feed { return &Feed{store: store} }

// Posts returns every post, newest first.
func (f *Feed) Posts() ([]Post, error) {
	var posts []Post
	err := decodeLines(f.store.postsPath(), func(line []byte) error {
		var p Post
		if err := json.Unmarshal(line, &p); err != nil {
			return err
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(posts)
	return posts, nil
}

// Add appends a new post authored by the subject.
func (f *Feed) Add(title, content string, subject *Subject) (*Post, error) {
	if subject == nil {
		return nil, errors.New("you must be signed in to post")
	}
	if title == "" || content == "" {
		return nil, errors.New("both title and content are required")
	}
	post := Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Author:    Author{Name: subject.Name, Email: subject.Email},
		CreatedAt: time.Now(),
	}
	if err := appendLine(f.store.postsPath(), post); err != nil {
		return nil, fmt.Errorf("cannot save post: %w", err)
	}
	return &post, nil
}

// ToggleLike flips the subject's like on the given post and returns the
// updated post.
func (f *Feed) ToggleLike(postID string, subject *Subject) (*Post, error) {
	return f.update(postID, subject, func(p *Post, uid string) {
		if i := slices.Index(p.LikedBy, uid); i >= 0 {
			p.LikedBy = slices.Delete(p.LikedBy, i, i+1)
			p.Likes--
		} else {
			p.LikedBy = append(p.LikedBy, uid)
			p.Likes++
		}
	})
}

// ToggleUpvote flips the subject's upvote on the given post and returns
// the updated post.
func (f *Feed) ToggleUpvote(postID string, subject *Subject) (*Post, error) {
	return f.update(postID, subject, func(p *Post, uid string) {
		if i := slices.Index(p.UpvotedBy, uid); i >= 0 {
			p.UpvotedBy = slices.Delete(p.UpvotedBy, i, i+1)
			p.Upvotes--
		} else {
			p.UpvotedBy = append(p.UpvotedBy, uid)
			p.Upvotes++
		}
	})
}

// AddComment appends a comment by the subject to the given post.
func (f *Feed) AddComment(postID, text string, subject *Subject) (*Post, error) {
	if text == "" {
		return nil, errors.New("comment cannot be empty")
	}
	return f.update(postID, subject, func(p *Post, _ string) {
		p.Comments = append(p.Comments, Comment{
			Author:    Author{Name: subject.Name, Email: subject.Email},
			Text:      text,
			CreatedAt: time.Now(),
		})
	})
}

// update applies mutate to one post and rewrites the feed.
func (f *Feed) update(postID string, subject *Subject, mutate func(p *Post, uid string)) (*Post, error) {
	if subject == nil {
		return nil, errors.New("you must be signed in")
	}

	var posts []Post
	err := decodeLines(f.store.postsPath(), func(line []byte) error {
		var p Post
		if err := json.Unmarshal(line, &p); err != nil {
			return err
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var updated *Post
	for i := range posts {
		if posts[i].ID == postID {
			mutate(&posts[i], subject.ID)
			updated = &posts[i]
			break
		}
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %q", ErrPostNotFound, postID)
	}

	if err := rewriteLines(f.store.postsPath(), posts); err != nil {
		return nil, fmt.Errorf("cannot save feed: %w", err)
	}
	return updated, nil
}
