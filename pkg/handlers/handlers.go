// Package handlers wires the moon calculation into HTTP. One endpoint
// serves the report as text or JSON, the index renders it as a page, and
// everything is cached by the day since the answer only changes at
// midnight.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/spencer-p/moondash/pkg/cache"
	"github.com/spencer-p/moondash/pkg/clock"
	"github.com/spencer-p/moondash/pkg/lines"
	"github.com/spencer-p/moondash/pkg/metrics"
	"github.com/spencer-p/moondash/pkg/report"
	"github.com/spencer-p/moondash/pkg/sunset"
	"github.com/spencer-p/moondash/pkg/timetricks"
	"github.com/spencer-p/moondash/pkg/visualize"

	"github.com/gorilla/mux"
)

const (
	dateFmt = "2006-01-02"

	koDataEnvKey = "KO_DATA_PATH"
)

// ErrInvalidDate rejects date query parameters that do not parse.
var ErrInvalidDate = errors.New("invalid date")

func Register(r *mux.Router, prefix string, content fs.FS, clk clock.Clock) {
	r.Handle("/", metrics.LatencyHandler(makeIndexHandler(content, clk)))
	r.Handle("/api/v1/moon", metrics.LatencyHandler(makeServeMoon(clk)))
	r.PathPrefix("/static/").Handler(http.StripPrefix(prefix, http.FileServer(http.FS(content))))
}

func getDataDir() string {
	if dir := os.Getenv(koDataEnvKey); dir != "" {
		return dir
	} else {
		return "."
	}
}

// nightOf resolves which night a request asks about: an explicit date query
// parameter if present, otherwise the upcoming midnight.
func nightOf(r *http.Request, clk clock.Clock) (time.Time, error) {
	if s := r.FormValue("date"); s != "" {
		t, err := time.Parse(dateFmt, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return t, nil
	}
	return clk.Now().UTC().AddDate(0, 0, 1), nil
}

// buildReport computes the night's report and decorates it with flavor
// text. Missing text assets are logged and skipped, never fatal.
func buildReport(night time.Time) report.Report {
	rep := report.New(night, sunset.SantaCruz)
	if quote, err := lines.FromFile(assetPath("quotes.txt")); err != nil {
		log.Printf("Failed to pick a quote: %+v", err)
	} else {
		rep.Quote = quote
	}
	if exclamation, err := lines.FromFile(assetPath("exclamations.txt")); err != nil {
		log.Printf("Failed to pick an exclamation: %+v", err)
	} else {
		rep.Exclamation = exclamation
	}
	return rep
}

func assetPath(name string) string {
	return path.Join(getDataDir(), "static", name)
}

func makeServeMoon(clk clock.Clock) http.Handler {
	// Cache for slightly less than one day so nightly clients don't see
	// yesterday's moon.
	timeCache := cache.NewTimed(23 * time.Hour)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)

		night, err := nightOf(r, clk)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Bad request: %+v", err)
			return
		}

		// The key carries the day so an entry cannot leak across midnight.
		key := fmt.Sprintf("%s %s %s", r.Method, r.URL, timetricks.UniqueDay(night))

		// Serve the cached version from memory if possible.
		if cached, ok := timeCache.Get(key); ok {
			w.Header().Add("Content-Type", contentTypeFor(r))
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		log.Println("No cache data")

		rep := buildReport(night)
		metrics.CountPhase(rep.Name)

		// Duplicate the http response onto a buffer for the cache.
		var toCache bytes.Buffer
		mw := io.MultiWriter(w, &toCache)

		w.Header().Add("Content-Type", contentTypeFor(r))
		w.WriteHeader(http.StatusOK)
		if r.FormValue("o") == "json" {
			if err := json.NewEncoder(mw).Encode(&rep); err != nil {
				log.Printf("Failed to encode JSON result: %+v", err)
			}
		} else {
			fmt.Fprintf(mw, "%s\n", rep.String())
		}

		// Save the result asynchronously as the cache may block.
		go func() {
			timeCache.Set(key, toCache.Bytes())
		}()
	})
}

func contentTypeFor(r *http.Request) string {
	if r.FormValue("o") == "json" {
		return "application/json"
	}
	return "text/plain"
}

// TemplateInput feeds the server-rendered index page.
type TemplateInput struct {
	Report    report.Report
	MoonImage template.HTML
}

func makeIndexHandler(content fs.FS, clk clock.Clock) http.Handler {
	indexTemplate := template.Must(template.ParseFS(content, "static/index.template.html"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)

		night, err := nightOf(r, clk)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Bad request: %+v", err)
			return
		}

		rep := buildReport(night)
		rep.UpdatePrettyTime()
		metrics.CountPhase(rep.Name)

		var img bytes.Buffer
		if _, err := visualize.New(rep.Illumination, rep.Waxing).Encode(&img); err != nil {
			log.Printf("Failed to draw the moon: %+v", err)
		}

		tinput := TemplateInput{
			Report:    rep,
			MoonImage: template.HTML(img.String()),
		}

		w.Header().Add("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		if err := indexTemplate.Execute(w, tinput); err != nil {
			log.Printf("Failed to execute template: %v", err)
		}
	})
}
