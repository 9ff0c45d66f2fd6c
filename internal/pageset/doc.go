// Package pageset computes the route table of a multilingual static blog.
//
// Four views share one partition, paginate and path-building routine:
//
//   - Index: one group per language, the paginated home page.
//   - Archive: per language an all-time group, a group per year and a group per month.
//   - Categories: per language a group for each category with matching posts.
//   - Tags: per language a group for each tag with matching posts.
//
// Every group is sorted newest first, split into pages of the configured size
// and turned into Descriptors whose paths and links are derived only through
// the pathing package. Generation is pure: the same Input and Options always
// produce the same descriptors in the same order.
package pageset
