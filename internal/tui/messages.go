package tui

import (
	"github.com/newsarchive-kr/newsarchive/internal/archive"
)

type postsLoadedMsg struct {
	posts []archive.Post
}

type loadErrMsg struct {
	err error
}

type browserErrMsg struct {
	err error
}

type themeSavedMsg struct {
	err error
}
