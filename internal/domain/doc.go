// Package domain defines the core entities of the social-content registry
// (users, posts, photos, comments), their validation rules, and the date
// parsing applied at the validation boundary.
package domain
