// Package firestore contains the concrete implementation of the persistence
// layer on top of Cloud Firestore.
package firestore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names.
const (
	collectionBusinesses    = "businesses"
	collectionReviews       = "reviews"
	collectionPosts         = "posts"
	collectionNotifications = "notifications"
	collectionUsers         = "users"
)

// prefixLast is the maximal-suffix sentinel closing a prefix range:
// name >= s AND name <= s + prefixLast matches every name starting with s.
const prefixLast = ""

// isNotFound reports whether err is Firestore's missing-document error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
