package ports

// URLOpener hands a web URL to the desktop's default handler (browser,
// image viewer, audio player)
type URLOpener interface {
	Open(url string) error
}
