package store

// Alert is one transient message shown to the user.
type Alert struct {
	ID      string
	Message string
	Kind    string
}

// AuthState tracks the session.
type AuthState struct {
	Token         string
	Authenticated bool
	Loading       bool
	User          *User
}

// ProfileState tracks the viewed profile, the public list and the
// GitHub repo list.
type ProfileState struct {
	Profile  *Profile
	Profiles []Profile
	Repos    []Repo
	Loading  bool
	Error    string
}

// PostState tracks the feed and the currently open post.
type PostState struct {
	Posts   []Post
	Post    *Post
	Loading bool
	Error   string
}

// State is the whole client state tree. Reducers treat it as immutable
// and return a copy with only their slice replaced.
type State struct {
	Alerts  []Alert
	Auth    AuthState
	Profile ProfileState
	Post    PostState
}

// initialState matches a fresh, unauthenticated session.
func initialState() State {
	return State{
		Auth:    AuthState{Loading: true},
		Profile: ProfileState{Loading: true},
		Post:    PostState{Loading: true},
	}
}

func alertReducer(alerts []Alert, ev Event) []Alert {
	switch e := ev.(type) {
	case SetAlertEvent:
		next := make([]Alert, len(alerts), len(alerts)+1)
		copy(next, alerts)
		return append(next, Alert{ID: e.ID, Message: e.Message, Kind: e.Kind})
	case RemoveAlertEvent:
		next := make([]Alert, 0, len(alerts))
		for _, a := range alerts {
			if a.ID != e.ID {
				next = append(next, a)
			}
		}
		return next
	}
	return alerts
}

func authReducer(auth AuthState, ev Event) AuthState {
	switch e := ev.(type) {
	case RegisterSuccessEvent:
		return AuthState{Token: e.Token, Authenticated: true, Loading: false}
	case LoginSuccessEvent:
		return AuthState{Token: e.Token, Authenticated: true, Loading: false}
	case UserLoadedEvent:
		user := e.User
		auth.Authenticated = true
		auth.Loading = false
		auth.User = &user
		return auth
	case RegisterFailEvent, LoginFailEvent, AuthErrorEvent, LogoutEvent, AccountDeletedEvent:
		return AuthState{Loading: false}
	}
	return auth
}

func profileReducer(p ProfileState, ev Event) ProfileState {
	switch e := ev.(type) {
	case ProfileLoadedEvent:
		profile := e.Profile
		p.Profile = &profile
		p.Loading = false
		p.Error = ""
		return p
	case ProfilesLoadedEvent:
		p.Profiles = e.Profiles
		p.Loading = false
		p.Error = ""
		return p
	case ReposLoadedEvent:
		p.Repos = e.Repos
		p.Loading = false
		return p
	case ProfileErrorEvent:
		p.Error = e.Message
		p.Loading = false
		return p
	case ClearProfileEvent:
		return ProfileState{Loading: false}
	case AccountDeletedEvent, LogoutEvent:
		return ProfileState{Loading: false}
	}
	return p
}

func postReducer(p PostState, ev Event) PostState {
	switch e := ev.(type) {
	case PostsLoadedEvent:
		p.Posts = e.Posts
		p.Loading = false
		p.Error = ""
		return p
	case PostLoadedEvent:
		post := e.Post
		p.Post = &post
		p.Loading = false
		p.Error = ""
		return p
	case PostAddedEvent:
		next := make([]Post, 0, len(p.Posts)+1)
		next = append(next, e.Post)
		next = append(next, p.Posts...)
		p.Posts = next
		p.Loading = false
		return p
	case PostDeletedEvent:
		next := make([]Post, 0, len(p.Posts))
		for _, post := range p.Posts {
			if post.ID != e.PostID {
				next = append(next, post)
			}
		}
		p.Posts = next
		p.Loading = false
		return p
	case LikesUpdatedEvent:
		next := make([]Post, len(p.Posts))
		for i, post := range p.Posts {
			if post.ID == e.PostID {
				post.Likes = e.Likes
			}
			next[i] = post
		}
		p.Posts = next
		if p.Post != nil && p.Post.ID == e.PostID {
			patched := *p.Post
			patched.Likes = e.Likes
			p.Post = &patched
		}
		p.Loading = false
		return p
	case CommentsUpdatedEvent:
		if p.Post != nil && p.Post.ID == e.PostID {
			patched := *p.Post
			patched.Comments = e.Comments
			p.Post = &patched
		}
		p.Loading = false
		return p
	case PostErrorEvent:
		p.Error = e.Message
		p.Loading = false
		return p
	}
	return p
}
