package a

import (
	"net/http"
	"strings"
)

func bad() {
	_, _ = http.Get("https://go.voteamerica.com")                                // want "используйте httpclient.Client вместо http.Get"
	_, _ = http.Post("https://go.voteamerica.com", "", strings.NewReader(""))    // want "используйте httpclient.Client вместо http.Post"
	_, _ = http.DefaultClient.Do(nil)                                            // want "используйте httpclient.Client вместо http.DefaultClient"
}

func good() {
	c := &http.Client{}
	_, _ = c.Get("https://go.voteamerica.com")
	_ = http.StatusOK
	_ = http.DefaultTransport
}
