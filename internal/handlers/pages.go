package handlers

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/models"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/Pranav210905/fin/internal/views"
	"github.com/labstack/echo/v4"
)

// PageHandler serves the client page route table as JSON view models.
// Requests without a session get the signed-out variant of each page.
type PageHandler struct {
	store       *store.Store
	prefersDark bool
}

func NewPageHandler(st *store.Store, prefersDark bool) *PageHandler {
	return &PageHandler{store: st, prefersDark: prefersDark}
}

func (h *PageHandler) RegisterPageRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	e.GET("/", h.Home, mw...)
	e.GET("/login", h.Login, mw...)
	e.GET("/signup", h.Signup, mw...)
	e.GET("/explore", h.Explore, mw...)
	e.GET("/profile/:userId", h.Profile, mw...)
	e.GET("/post/:postId", h.PostDetail, mw...)
	e.GET("/*", h.Fallback)
}

type HomePage struct {
	SignedIn  bool                 `json:"signedIn"`
	Welcome   *Welcome             `json:"welcome,omitempty"`
	User      *models.UserCompact  `json:"user,omitempty"`
	Feed      []models.PostView    `json:"feed,omitempty"`
	Trending  []views.TagCount     `json:"trending"`
	Suggested []models.UserCompact `json:"suggested"`
	Theme     models.Theme         `json:"theme"`
}

type Welcome struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Signup   string `json:"signup"`
	Login    string `json:"login"`
}

type FormPage struct {
	Form   string       `json:"form"`
	Action string       `json:"action"`
	Fields []string     `json:"fields"`
	Theme  models.Theme `json:"theme"`
}

type ExplorePage struct {
	Tab      views.ExploreTab  `json:"tab"`
	Trending []views.TagCount  `json:"trending"`
	Posts    []models.PostView `json:"posts"`
}

type ProfilePage struct {
	User           models.User          `json:"user"`
	IsCurrentUser  bool                 `json:"isCurrentUser"`
	IsFollowing    bool                 `json:"isFollowing"`
	FollowersCount int                  `json:"followersCount"`
	FollowingCount int                  `json:"followingCount"`
	Tab            views.ProfileTab     `json:"tab"`
	Posts          []models.PostView    `json:"posts,omitempty"`
	Following      []models.UserCompact `json:"following,omitempty"`
}

type PostPage struct {
	Post     models.PostView      `json:"post"`
	Comments []models.CommentView `json:"comments"`
}

func (h *PageHandler) theme(c echo.Context) models.Theme {
	if s := viewer(c); s != nil {
		return s.Theme()
	}
	if h.prefersDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// Home is the feed for a signed-in user and a welcome screen otherwise.
func (h *PageHandler) Home(c echo.Context) error {
	snap := h.store.Snapshot()
	page := HomePage{
		Trending: views.TrendingHashtags(snap.Posts, panelTrendingLimit),
		Theme:    h.theme(c),
	}

	var me *models.User
	if s := viewer(c); s != nil {
		if u, ok := s.CurrentUser(); ok {
			me = &u
		}
	}
	page.Suggested = toCompact(views.SuggestedUsers(snap.Users, me, suggestedLimit))

	if me == nil {
		page.Welcome = &Welcome{
			Title:    "Welcome to FinChat",
			Subtitle: "Join the community of financial enthusiasts sharing insights and achievements",
			Signup:   "/signup",
			Login:    "/login",
		}
		return c.JSON(http.StatusOK, page)
	}

	compact := me.ToCompact()
	page.SignedIn = true
	page.User = &compact
	page.Feed = present(snap, views.Feed(snap.Posts, me), me.ID)
	return c.JSON(http.StatusOK, page)
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, FormPage{
		Form:   "login",
		Action: "/api/v1/auth/signin",
		Fields: []string{"username", "password"},
		Theme:  h.theme(c),
	})
}

func (h *PageHandler) Signup(c echo.Context) error {
	return c.JSON(http.StatusOK, FormPage{
		Form:   "signup",
		Action: "/api/v1/auth/signup",
		Fields: []string{"name", "username", "password", "avatar", "bio"},
		Theme:  h.theme(c),
	})
}

func (h *PageHandler) Explore(c echo.Context) error {
	page, err := explorePage(h.store.Snapshot(), c.QueryParam("tab"), viewerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *PageHandler) Profile(c echo.Context) error {
	var me *models.User
	if s := viewer(c); s != nil {
		if u, ok := s.CurrentUser(); ok {
			me = &u
		}
	}
	page, err := profilePage(h.store.Snapshot(), c.Param("userId"), c.QueryParam("tab"), me)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *PageHandler) PostDetail(c echo.Context) error {
	snap := h.store.Snapshot()
	post, ok := snap.Post(c.Param("postId"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	dir := views.NewDirectory(snap.Users)
	return c.JSON(http.StatusOK, PostPage{
		Post:     views.Present([]models.Post{*post}, dir, viewerID(c))[0],
		Comments: views.PresentComments(views.PostComments(snap.Comments, post), dir),
	})
}

// Fallback sends every unknown path to the home page.
func (h *PageHandler) Fallback(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}

func explorePage(snap *store.Snapshot, rawTab, viewerID string) (ExplorePage, error) {
	tab := views.TabTrending
	if rawTab != "" {
		tab = views.ExploreTab(rawTab)
	}
	if !tab.Valid() {
		return ExplorePage{}, echo.NewHTTPError(http.StatusBadRequest, "tab must be trending, milestones or goals")
	}
	return ExplorePage{
		Tab:      tab,
		Trending: views.TrendingHashtags(snap.Posts, exploreTrendingLimit),
		Posts:    present(snap, views.Explore(snap.Posts, tab), viewerID),
	}, nil
}

func profilePage(snap *store.Snapshot, userID, rawTab string, me *models.User) (ProfilePage, error) {
	u, ok := snap.User(userID)
	if !ok {
		return ProfilePage{}, echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	tab := views.TabPosts
	if rawTab != "" {
		tab = views.ProfileTab(rawTab)
	}
	if !tab.Valid() {
		return ProfilePage{}, echo.NewHTTPError(http.StatusBadRequest, "tab must be posts, milestones, bookmarks or following")
	}

	var meID string
	if me != nil {
		meID = me.ID
	}
	page := ProfilePage{
		User:           u.Clone(),
		IsCurrentUser:  meID == u.ID,
		IsFollowing:    me != nil && me.IsFollowing(u.ID),
		FollowersCount: len(u.Followers),
		FollowingCount: len(u.Following),
		Tab:            tab,
	}
	switch tab {
	case views.TabPosts:
		page.Posts = present(snap, views.ProfilePosts(snap.Posts, u.ID), meID)
	case views.TabProfileMilestones:
		page.Posts = present(snap, views.ProfileMilestones(snap.Posts, u.ID), meID)
	case views.TabBookmarks:
		page.Posts = present(snap, views.ProfileBookmarks(snap.Posts, u.ID), meID)
	case views.TabFollowing:
		page.Following = toCompact(views.ProfileFollowing(snap.Users, u))
	}
	return page, nil
}
