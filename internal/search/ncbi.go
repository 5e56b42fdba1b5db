// internal/search/ncbi.go
package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"biosci/internal/logging"
)

// Client talks to a QBLAST URL API endpoint (NCBI's Blast.cgi or a local
// mirror): Put submits, SearchInfo polls, Get with XML format fetches.
type Client struct {
	Endpoint     string
	HTTP         *http.Client  // nil means a client with a 60s timeout
	PollInterval time.Duration // default 10s
	Timeout      time.Duration // overall deadline; 0 means none
	Logger       *slog.Logger  // nil discards
}

var (
	ridRE    = regexp.MustCompile(`RID = (\S+)`)
	rtoeRE   = regexp.MustCompile(`RTOE = (\d+)`)
	statusRE = regexp.MustCompile(`Status=(\w+)`)
	noHitsRE = regexp.MustCompile(`ThereAreHits=no`)
)

// Search submits q, polls until the result is ready, and parses the XML
// report.
func (c *Client) Search(ctx context.Context, q Query) (Report, error) {
	q, err := q.Validate()
	if err != nil {
		return Report{}, err
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	lg := c.logger()

	rid, rtoe, err := c.put(ctx, q)
	if err != nil {
		return Report{}, err
	}
	lg.Info("search submitted", "rid", rid, "program", q.Program, "database", q.Database, "estimate_s", rtoe)

	for {
		if err := sleep(ctx, c.pollInterval()); err != nil {
			return Report{}, fmt.Errorf("qblast %s: %w", rid, err)
		}
		status, hits, err := c.status(ctx, rid)
		if err != nil {
			return Report{}, err
		}
		lg.Debug("search status", "rid", rid, "status", status)
		switch status {
		case "WAITING":
			continue
		case "READY":
			if !hits {
				return Report{RID: rid, Program: q.Program, Database: q.Database, Hits: []Hit{}}, nil
			}
			rep, err := c.fetch(ctx, rid, q.MaxHits)
			if err != nil {
				return Report{}, err
			}
			rep.RID = rid
			if rep.Program == "" {
				rep.Program = q.Program
			}
			if rep.Database == "" {
				rep.Database = q.Database
			}
			return rep, nil
		default:
			return Report{}, fmt.Errorf("qblast %s: search status %s", rid, status)
		}
	}
}

func (c *Client) put(ctx context.Context, q Query) (rid string, rtoe int, err error) {
	form := url.Values{
		"CMD":      {"Put"},
		"PROGRAM":  {q.Program},
		"DATABASE": {q.Database},
		"QUERY":    {q.Sequence},
	}
	if q.MaxHits > 0 {
		form.Set("HITLIST_SIZE", strconv.Itoa(q.MaxHits))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	body, err := c.do(req, "Put")
	if err != nil {
		return "", 0, err
	}
	m := ridRE.FindSubmatch(body)
	if m == nil {
		return "", 0, fmt.Errorf("qblast Put: no RID in response")
	}
	if t := rtoeRE.FindSubmatch(body); t != nil {
		rtoe, _ = strconv.Atoi(string(t[1]))
	}
	return string(m[1]), rtoe, nil
}

func (c *Client) status(ctx context.Context, rid string) (status string, hits bool, err error) {
	body, err := c.get(ctx, "SearchInfo", url.Values{
		"CMD":           {"Get"},
		"RID":           {rid},
		"FORMAT_OBJECT": {"SearchInfo"},
	})
	if err != nil {
		return "", false, err
	}
	m := statusRE.FindSubmatch(body)
	if m == nil {
		return "", false, fmt.Errorf("qblast %s: no status in response", rid)
	}
	return string(m[1]), !noHitsRE.Match(body), nil
}

func (c *Client) fetch(ctx context.Context, rid string, maxHits int) (Report, error) {
	params := url.Values{
		"CMD":         {"Get"},
		"RID":         {rid},
		"FORMAT_TYPE": {"XML"},
	}
	if maxHits > 0 {
		params.Set("HITLIST_SIZE", strconv.Itoa(maxHits))
	}
	body, err := c.get(ctx, "Get", params)
	if err != nil {
		return Report{}, err
	}
	rep, err := ParseXML(body)
	if err != nil {
		return Report{}, fmt.Errorf("qblast %s: %w", rid, err)
	}
	if maxHits > 0 && len(rep.Hits) > maxHits {
		rep.Hits = rep.Hits[:maxHits]
	}
	return rep, nil
}

func (c *Client) get(ctx context.Context, cmd string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, cmd)
}

func (c *Client) do(req *http.Request, cmd string) ([]byte, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("qblast %s: %w", cmd, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("qblast %s: http status %d", cmd, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("qblast %s: %w", cmd, err)
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 60 * time.Second}
}

func (c *Client) pollInterval() time.Duration {
	if c.PollInterval <= 0 {
		return 10 * time.Second
	}
	return c.PollInterval
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

/* ------------------------------ XML report ------------------------------ */

type xmlOutput struct {
	Program    string `xml:"BlastOutput_program"`
	DB         string `xml:"BlastOutput_db"`
	Iterations []struct {
		Hits []xmlHit `xml:"Iteration_hits>Hit"`
	} `xml:"BlastOutput_iterations>Iteration"`
}

type xmlHit struct {
	ID        string   `xml:"Hit_id"`
	Def       string   `xml:"Hit_def"`
	Accession string   `xml:"Hit_accession"`
	Len       int      `xml:"Hit_len"`
	Hsps      []xmlHsp `xml:"Hit_hsps>Hsp"`
}

type xmlHsp struct {
	BitScore float64 `xml:"Hsp_bit-score"`
	EValue   float64 `xml:"Hsp_evalue"`
	Identity int     `xml:"Hsp_identity"`
	AlignLen int     `xml:"Hsp_align-len"`
}

// ParseXML reads a BLAST XML (version 1) report. Each hit keeps its
// highest-scoring HSP; hits keep report order.
func ParseXML(b []byte) (Report, error) {
	var out xmlOutput
	if err := xml.Unmarshal(b, &out); err != nil {
		return Report{}, fmt.Errorf("parse blast xml: %w", err)
	}
	rep := Report{Program: out.Program, Database: out.DB, Hits: []Hit{}}
	for _, it := range out.Iterations {
		for _, h := range it.Hits {
			if len(h.Hsps) == 0 {
				continue
			}
			best := h.Hsps[0]
			for _, s := range h.Hsps[1:] {
				if s.BitScore > best.BitScore {
					best = s
				}
			}
			acc := h.Accession
			if acc == "" {
				acc = h.ID
			}
			rep.Hits = append(rep.Hits, Hit{
				Accession: acc,
				Title:     h.Def,
				Length:    h.Len,
				BitScore:  best.BitScore,
				EValue:    best.EValue,
				Identity:  best.Identity,
				AlignLen:  best.AlignLen,
			})
		}
	}
	return rep, nil
}
