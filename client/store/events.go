package store

// Event is a state transition request. Each concrete event is handled
// by exactly one slice reducer.
type Event interface {
	isEvent()
}

// Alert events.

// SetAlertEvent appends one transient alert.
type SetAlertEvent struct {
	ID      string
	Message string
	Kind    string
}

// RemoveAlertEvent removes the alert with the matching ID, if present.
type RemoveAlertEvent struct {
	ID string
}

// Auth events.

// RegisterSuccessEvent carries the token issued for a new account.
type RegisterSuccessEvent struct {
	Token string
}

// RegisterFailEvent signals a failed registration.
type RegisterFailEvent struct{}

// LoginSuccessEvent carries the token issued for a session.
type LoginSuccessEvent struct {
	Token string
}

// LoginFailEvent signals a failed login.
type LoginFailEvent struct{}

// UserLoadedEvent carries the authenticated user's record.
type UserLoadedEvent struct {
	User User
}

// AuthErrorEvent signals that the session token was rejected.
type AuthErrorEvent struct{}

// LogoutEvent ends the session.
type LogoutEvent struct{}

// AccountDeletedEvent ends the session after account removal.
type AccountDeletedEvent struct{}

// Profile events.

// ProfileLoadedEvent carries a single fetched or mutated profile.
type ProfileLoadedEvent struct {
	Profile Profile
}

// ProfilesLoadedEvent carries the public profile list.
type ProfilesLoadedEvent struct {
	Profiles []Profile
}

// ReposLoadedEvent carries a user's GitHub repositories.
type ReposLoadedEvent struct {
	Repos []Repo
}

// ProfileErrorEvent records a failed profile request.
type ProfileErrorEvent struct {
	Message string
	Status  int
}

// ClearProfileEvent resets the profile slice so navigation between
// users never flashes a stale profile.
type ClearProfileEvent struct{}

// Post events.

// PostsLoadedEvent carries the feed.
type PostsLoadedEvent struct {
	Posts []Post
}

// PostLoadedEvent carries a single post.
type PostLoadedEvent struct {
	Post Post
}

// PostAddedEvent prepends a newly created post.
type PostAddedEvent struct {
	Post Post
}

// PostDeletedEvent removes a post from the feed by id.
type PostDeletedEvent struct {
	PostID uint
}

// LikesUpdatedEvent replaces the like list of the matching post only.
type LikesUpdatedEvent struct {
	PostID uint
	Likes  []Like
}

// CommentsUpdatedEvent replaces the comment list of the loaded post.
type CommentsUpdatedEvent struct {
	PostID   uint
	Comments []Comment
}

// PostErrorEvent records a failed post request.
type PostErrorEvent struct {
	Message string
	Status  int
}

func (SetAlertEvent) isEvent()        {}
func (RemoveAlertEvent) isEvent()     {}
func (RegisterSuccessEvent) isEvent() {}
func (RegisterFailEvent) isEvent()    {}
func (LoginSuccessEvent) isEvent()    {}
func (LoginFailEvent) isEvent()       {}
func (UserLoadedEvent) isEvent()      {}
func (AuthErrorEvent) isEvent()       {}
func (LogoutEvent) isEvent()          {}
func (AccountDeletedEvent) isEvent()  {}
func (ProfileLoadedEvent) isEvent()   {}
func (ProfilesLoadedEvent) isEvent()  {}
func (ReposLoadedEvent) isEvent()     {}
func (ProfileErrorEvent) isEvent()    {}
func (ClearProfileEvent) isEvent()    {}
func (PostsLoadedEvent) isEvent()     {}
func (PostLoadedEvent) isEvent()      {}
func (PostAddedEvent) isEvent()       {}
func (PostDeletedEvent) isEvent()     {}
func (LikesUpdatedEvent) isEvent()    {}
func (CommentsUpdatedEvent) isEvent() {}
func (PostErrorEvent) isEvent()       {}
