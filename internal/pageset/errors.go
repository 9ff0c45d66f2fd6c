package pageset

import (
	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/post"
)

// IsInvalidConfiguration reports whether err was caused by unusable options.
func IsInvalidConfiguration(err error) bool {
	return errors.HasCategory(err, errors.CategoryConfig)
}

// IsMalformedPost reports whether err was caused by a post lacking a required attribute.
func IsMalformedPost(err error) bool {
	return errors.HasCategory(err, errors.CategoryContent)
}

// checkPosts fails on the first post, in input order, that lacks an attribute
// the view needs. Malformed posts are never skipped.
func checkPosts(v View, posts post.Collection) error {
	for _, p := range posts {
		if attr := p.MissingAttribute(); attr != "" {
			return errors.ContentError("post is missing a required attribute").
				WithContext("post_id", p.ID).
				WithContext("attribute", attr).
				WithContext("view", string(v)).
				Build()
		}
	}
	return nil
}
