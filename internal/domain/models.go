// Package domain defines the persistence models for users, pods, prompts,
// responses, and reactions. These types are mapped with GORM and form the
// core data layer of the InTouch application.
package domain

import (
	"time"
)

// User represents a registered account. Usernames and emails are unique
// across the system; the password column stores a bcrypt hash and is never
// serialized into API responses.
//
// Fields:
//   - ID: store-assigned integer primary key.
//   - Username / Email: unique identity columns.
//   - Password: bcrypt hash (json:"-").
//   - DisplayName: human-readable name shown in pod feeds.
//   - Avatar: optional profile image reference.
//   - IsActive: account flag (reserved; accounts are never hard-deleted).
type User struct {
	ID          int       `json:"id"           gorm:"primaryKey;autoIncrement"`
	Username    string    `json:"username"     gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	Email       string    `json:"email"        gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Password    string    `json:"-"            gorm:"type:varchar(255);not null"`
	DisplayName string    `json:"display_name" gorm:"type:varchar(255);not null"`
	Avatar      *string   `json:"avatar,omitempty" gorm:"type:text"`
	IsActive    bool      `json:"is_active"    gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Pod represents a private group of users sharing weekly prompts and
// responses. The creator is automatically added as an admin member.
type Pod struct {
	ID          int       `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name"        gorm:"type:varchar(255);not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	CreatedBy   int       `json:"created_by"  gorm:"not null;index"`
	IsActive    bool      `json:"is_active"   gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Pod.
func (Pod) TableName() string { return "pods" }

// PodMember is the join row between a user and a pod. A user may belong to a
// pod at most once, enforced by the unique (pod_id, user_id) index. IsAdmin
// is a flag on the relationship, not a separate entity.
type PodMember struct {
	ID       int       `json:"id"        gorm:"primaryKey;autoIncrement"`
	PodID    int       `json:"pod_id"    gorm:"not null;uniqueIndex:ux_pod_members_pod_user,priority:1"`
	UserID   int       `json:"user_id"   gorm:"not null;index;uniqueIndex:ux_pod_members_pod_user,priority:2"`
	IsAdmin  bool      `json:"is_admin"  gorm:"not null;default:false"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`

	// Pod is the parent group. Membership rows are cascade-deleted if the
	// pod is removed.
	Pod Pod `json:"-" gorm:"foreignKey:PodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for PodMember.
func (PodMember) TableName() string { return "pod_members" }

// Prompt is a recurring weekly question with an active window. Exactly one
// prompt is considered "current": the most recently started active prompt.
// Prompts are created administratively (seed data) and never mutated.
type Prompt struct {
	ID          int       `json:"id"          gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title"       gorm:"type:varchar(255);not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Type        string    `json:"type"        gorm:"type:varchar(32);not null"` // "high-low", "photo", "question", ...
	IsActive    bool      `json:"is_active"   gorm:"not null;default:true;index"`
	WeekStart   time.Time `json:"week_start"  gorm:"not null;index"`
	WeekEnd     time.Time `json:"week_end"    gorm:"not null"`
}

// TableName returns the database table name for Prompt.
func (Prompt) TableName() string { return "prompts" }

// Response is one user's answer to a prompt within one pod. The unique
// (user_id, prompt_id, pod_id) index enforces the one-response rule at the
// schema level; the service layer additionally pre-checks inside a
// transaction so the caller gets a clean conflict instead of a driver error.
//
// Content holds the serialized structured payload (see content.go for the
// tagged variant). IsVisible defaults to true; the hidden transition exists
// in the schema but is not exposed by any endpoint.
type Response struct {
	ID        int       `json:"id"         gorm:"primaryKey;autoIncrement"`
	PromptID  int       `json:"prompt_id"  gorm:"not null;index;uniqueIndex:ux_responses_user_prompt_pod,priority:2"`
	PodID     int       `json:"pod_id"     gorm:"not null;index;uniqueIndex:ux_responses_user_prompt_pod,priority:3"`
	UserID    int       `json:"user_id"    gorm:"not null;uniqueIndex:ux_responses_user_prompt_pod,priority:1"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	ImageURL  *string   `json:"image_url,omitempty" gorm:"type:text"`
	IsVisible bool      `json:"is_visible" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Pod and Prompt are the scoping parents; responses go away with their pod.
	Pod    Pod    `json:"-" gorm:"foreignKey:PodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Prompt Prompt `json:"-" gorm:"foreignKey:PromptID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Response.
func (Response) TableName() string { return "responses" }

// ResponseLike is the join row for a user liking a response. The unique
// (response_id, user_id) index guards against double-likes; the service
// layer translates the constraint violation into a conflict error.
type ResponseLike struct {
	ID         int       `json:"id"          gorm:"primaryKey;autoIncrement"`
	ResponseID int       `json:"response_id" gorm:"not null;uniqueIndex:ux_response_likes_response_user,priority:1"`
	UserID     int       `json:"user_id"     gorm:"not null;index;uniqueIndex:ux_response_likes_response_user,priority:2"`
	CreatedAt  time.Time `json:"created_at"`

	// Likes are cascade-deleted with their parent response.
	Response Response `json:"-" gorm:"foreignKey:ResponseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ResponseLike.
func (ResponseLike) TableName() string { return "response_likes" }

// ResponseComment is an append-only comment on a response. Comments are read
// as part of the pod feed; no creation endpoint is currently mounted.
type ResponseComment struct {
	ID         int       `json:"id"          gorm:"primaryKey;autoIncrement"`
	ResponseID int       `json:"response_id" gorm:"not null;index"`
	UserID     int       `json:"user_id"     gorm:"not null;index"`
	Content    string    `json:"content"     gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`

	// Comments are cascade-deleted with their parent response.
	Response Response `json:"-" gorm:"foreignKey:ResponseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ResponseComment.
func (ResponseComment) TableName() string { return "response_comments" }

// Session is a server-side authenticated session keyed by the opaque sid
// carried in the client cookie. Its only payload is the user id; expired
// rows are treated as absent and cleaned up lazily on lookup.
type Session struct {
	SID       string    `json:"sid"        gorm:"column:sid;type:varchar(64);primaryKey"`
	UserID    int       `json:"user_id"    gorm:"not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Session.
func (Session) TableName() string { return "sessions" }

//
// Enriched read models (API shapes, not tables)
//

// PodWithStats is a pod enriched with the caller's membership view: the live
// member count and whether the caller's own membership row is an admin row.
type PodWithStats struct {
	Pod
	MemberCount int  `json:"member_count"`
	IsAdmin     bool `json:"is_admin"`
}

// PodMemberWithUser is a membership row joined with the member's user record.
type PodMemberWithUser struct {
	PodMember
	User User `json:"user"`
}

// PromptWithStats is a prompt enriched with pod-scoped aggregates: how many
// responses exist for (prompt, pod), how many members the pod has, and the
// whole days remaining in the prompt's week (never negative).
type PromptWithStats struct {
	Prompt
	ResponseCount int `json:"response_count"`
	TotalMembers  int `json:"total_members"`
	DaysRemaining int `json:"days_remaining"`
}

// CommentWithUser is a comment joined with its author.
type CommentWithUser struct {
	ResponseComment
	User User `json:"user"`
}

// ResponseWithDetails is a feed entry: the response plus its author, pod,
// live like/comment counts, the comments themselves, and the requester-aware
// IsLiked flag. TimeAgo is a cosmetic relative-time label computed at read
// time; it degrades to a neutral placeholder rather than failing the listing.
type ResponseWithDetails struct {
	Response
	User          User              `json:"user"`
	Pod           Pod               `json:"pod"`
	LikesCount    int               `json:"likes_count"`
	CommentsCount int               `json:"comments_count"`
	IsLiked       bool              `json:"is_liked"`
	Comments      []CommentWithUser `json:"comments"`
	TimeAgo       string            `json:"time_ago"`
}
