package domain

// Notification types.
const (
	NotifFollow   = "FOLLOW"
	NotifLike     = "LIKE"
	NotifComment  = "COMMENT"
	NotifRepost   = "REPOST"
	NotifBookmark = "BOOKMARK"
)

// Post content limit in characters.
const MaxPostContentLen = 280

// NotificationSink receives side-effect notifications from the user and
// post services. Implementations must treat sender == recipient as a
// no-op and must never let a failure propagate to the triggering action.
type NotificationSink interface {
	Create(recipientID, senderID uint, notifType, message string, postID *uint)
}
