package main

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	tailwind "github.com/davidHarwardt/include-tailwind"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yosssi/gohtml"
)

var RELOAD_EVENT = []byte("event:message\ndata:reload\n\n")

const PAGE = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>playground</title>
%s
<script>new EventSource("/reload_event").onmessage = function (e) { if (e.data == "reload") { location.reload(); } };</script>
</head>
<body class="p-4">
<div class="mx-auto max-w-prose bg-slate-300 p-4">some prose</div>
</body>
</html>`

func main() {
	os.Setenv("PROFILE", "debug")
	os.Setenv("OUT_DIR", "./build")
	os.MkdirAll("./build", 0755)

	config := tailwind.New(
		tailwind.WithSrcDir("./"),
		// tailwind.Always(),
		// tailwind.WithPath("./style.scss"),
	)

	result, err := config.Build()

	if err != nil {
		panic(err)
	}

	var mutex sync.Mutex
	snippet, err := result.Snippet()

	if err != nil {
		panic(err)
	}

	subscribers := make(map[string]chan bool)

	go config.StartWatcher(func(result *tailwind.Result) {
		s, err := result.Snippet()

		if err != nil {
			fmt.Println("[PLAYGROUND]", err)
			return
		}

		mutex.Lock()
		snippet = s

		for _, c := range subscribers {
			c <- true
		}
		mutex.Unlock()
	}, "./")

	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		mutex.Lock()
		page := fmt.Sprintf(PAGE, snippet)
		mutex.Unlock()

		w.Header().Add("Content-Type", "text/html")
		w.Write([]byte(gohtml.Format(page)))
	})

	r.Get("/reload_event", func(w http.ResponseWriter, r *http.Request) {
		events := make(chan bool)
		id := uuid.NewString()

		mutex.Lock()
		subscribers[id] = events
		mutex.Unlock()

		defer func() {
			mutex.Lock()
			delete(subscribers, id)
			mutex.Unlock()
		}()

		flusher, ok := w.(http.Flusher)

		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher.Flush()

		for {
			select {
			case <-events:
				w.Write(RELOAD_EVENT)
				flusher.Flush()

			case <-r.Context().Done():
				return
			}
		}
	})

	http.ListenAndServe(":3000", r)
}
