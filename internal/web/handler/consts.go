package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the page every form post returns to.
	RootPath = "/"

	// RouterRootPath is the root path of a route group.
	RouterRootPath = "/"

	// ErrNilPageFatalLogMsg is used if the app, cfg or page pointer is nil.
	ErrNilPageFatalLogMsg = "app, cfg or page is nil"
)
