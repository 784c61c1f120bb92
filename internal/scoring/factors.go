package scoring

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/nordstaff/consultant-matcher/internal/entity"
)

// seniorityTiers maps seniority vocabulary to ordinal tiers. Compatibility
// decreases monotonically with tier distance.
var seniorityTiers = map[string]int{
	"intern": 1, "trainee": 1, "graduate": 1, "entry": 1, "junior": 1,
	"mid": 2, "intermediate": 2, "experienced": 2, "regular": 2,
	"senior": 3,
	"lead": 4, "principal": 4, "staff": 4, "architect": 4, "expert": 4,
	"executive": 5, "c-level": 5, "chief": 5, "director": 5, "vp": 5, "head": 5,
}

// SeniorityTier returns the ordinal tier for a seniority label, matching on
// any known word in the label. Returns 0 when the label carries no signal.
func SeniorityTier(label string) int {
	label = strings.ToLower(label)
	best := 0
	for term, tier := range seniorityTiers {
		if strings.Contains(label, term) && tier > best {
			best = tier
		}
	}
	return best
}

// seniorityScore maps tier distance onto [0,1]: exact match 1.0, then 0.7,
// 0.4, 0.1, 0. Returns ok=false when either side carries no tier signal.
func seniorityScore(jobSeniority, candSeniority string) (float64, bool) {
	jt, ct := SeniorityTier(jobSeniority), SeniorityTier(candSeniority)
	if jt == 0 || ct == 0 {
		return 0, false
	}
	d := jt - ct
	if d < 0 {
		d = -d
	}
	score := 1.0 - 0.3*float64(d)
	if score < 0 {
		score = 0
	}
	return score, true
}

// roleScore uses canonical role equivalence: roles were canonicalized at
// ingestion, so equality after folding is the test.
func roleScore(jobRole, candRole string) (float64, bool) {
	if jobRole == "" || candRole == "" {
		return 0, false
	}
	if strings.EqualFold(jobRole, candRole) {
		return 1.0, true
	}
	return 0, true
}

// roleSeniorityScore combines the two signals for the standard profile.
func roleSeniorityScore(job *entity.Job, c *entity.Candidate) (float64, bool) {
	sen, senOK := seniorityScore(job.Seniority, c.Seniority)
	role, roleOK := roleScore(job.Role, c.Role)
	switch {
	case senOK && roleOK:
		return 0.7*sen + 0.3*role, true
	case senOK:
		return sen, true
	case roleOK:
		return role, true
	}
	return 0, false
}

// skillOverlap scores how well the candidate's canonical skill set covers the
// job's required skills. Exact token match scores 1.0; otherwise the nearest
// candidate skill by edit-distance similarity at or above the threshold earns
// the partial credit; unmatched skills score 0. The result is the mean over
// required skills, and an empty requirement list scores 0 rather than being
// undefined.
func skillOverlap(required, offered []string, threshold, credit float64) (score float64, matched, missing []string) {
	if len(required) == 0 {
		return 0, nil, nil
	}

	offeredFolded := make([]string, len(offered))
	for i, s := range offered {
		offeredFolded[i] = strings.ToLower(strings.TrimSpace(s))
	}

	var total float64
	for _, req := range required {
		reqFolded := strings.ToLower(strings.TrimSpace(req))

		exact := false
		for _, off := range offeredFolded {
			if off == reqFolded {
				exact = true
				break
			}
		}
		if exact {
			total += 1.0
			matched = append(matched, req)
			continue
		}

		bestSim, bestSkill := 0.0, ""
		for i, off := range offeredFolded {
			if sim := levenshtein.Similarity(reqFolded, off, nil); sim > bestSim {
				bestSim, bestSkill = sim, offered[i]
			}
		}
		if bestSim >= threshold {
			total += credit
			matched = append(matched, req+" (~"+bestSkill+")")
			continue
		}
		missing = append(missing, req)
	}

	return total / float64(len(required)), matched, missing
}

// languageCoverage is the fraction of required languages the candidate also
// lists. No requirement means full coverage.
func languageCoverage(required, offered []string) float64 {
	if len(required) == 0 {
		return 1.0
	}
	offeredSet := make(map[string]bool, len(offered))
	for _, l := range offered {
		offeredSet[strings.ToLower(strings.TrimSpace(l))] = true
	}
	covered := 0
	for _, l := range required {
		if offeredSet[strings.ToLower(strings.TrimSpace(l))] {
			covered++
		}
	}
	return float64(covered) / float64(len(required))
}

// regionGroups clusters cities that count as the same commuting region.
var regionGroups = map[string][]string{
	"stockholm":  {"stockholm", "solna", "sundbyberg", "täby", "nacka", "järfälla"},
	"gothenburg": {"gothenburg", "göteborg", "mölndal", "partille", "kungsbacka"},
	"malmö":      {"malmö", "lund", "helsingborg", "landskrona", "eslöv"},
	"uppsala":    {"uppsala", "enköping", "knivsta", "östhammar"},
}

func regionOf(city string) string {
	city = strings.ToLower(city)
	if city == "" {
		return ""
	}
	for region, cities := range regionGroups {
		for _, c := range cities {
			if strings.Contains(city, c) {
				return region
			}
		}
	}
	return ""
}

// Geography tier values.
const (
	geoSameCity    = 1.0
	geoSameRegion  = 0.8
	geoRemoteFlat  = 0.7
	geoSameCountry = 0.6
	geoHybridGap   = 0.3
	geoNoSignal    = 0.2
)

// geographyScore ranks location compatibility: same city highest, same
// region then same country discounted, remote postings a flat intermediate
// value regardless of distance. An onsite-only posting against a remote-only
// candidate is a hard geographic mismatch and scores 0.
func geographyScore(job *entity.Job, c *entity.Candidate) (float64, bool) {
	if job.LocationCity == "" && job.LocationCountry == "" && job.OnsiteMode == "" {
		return 0, false
	}

	if job.OnsiteMode == entity.OnsiteModeOnsite && c.OnsiteMode == entity.OnsiteModeRemote {
		return 0, true
	}
	if job.OnsiteMode == entity.OnsiteModeRemote {
		return geoRemoteFlat, true
	}
	if job.OnsiteMode == entity.OnsiteModeHybrid && c.OnsiteMode == entity.OnsiteModeRemote {
		return geoHybridGap, true
	}

	if job.LocationCity != "" && c.LocationCity != "" {
		if strings.EqualFold(job.LocationCity, c.LocationCity) {
			return geoSameCity, true
		}
		jr, cr := regionOf(job.LocationCity), regionOf(c.LocationCity)
		if jr != "" && jr == cr {
			return geoSameRegion, true
		}
	}
	if job.LocationCountry != "" && c.LocationCountry != "" &&
		strings.EqualFold(job.LocationCountry, c.LocationCountry) {
		return geoSameCountry, true
	}
	return geoNoSignal, true
}

// domainSkills is the vocabulary treated as industry/domain signal for
// executive matching.
var domainSkills = map[string]bool{
	"digital transformation": true,
	"change management":      true,
	"enterprise architecture": true,
	"program leadership":      true,
	"strategic planning":      true,
	"technology strategy":     true,
	"m&a integration":         true,
	"innovation management":   true,
}

// industryScore is the coverage of the job's domain-level skills by the
// candidate. Unavailable when the job lists no domain-level skills.
func industryScore(job *entity.Job, c *entity.Candidate) (float64, bool) {
	var required []string
	for _, s := range job.Skills {
		if domainSkills[strings.ToLower(s)] {
			required = append(required, s)
		}
	}
	if len(required) == 0 {
		return 0, false
	}

	offered := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		offered[strings.ToLower(s)] = true
	}
	covered := 0
	for _, s := range required {
		if offered[strings.ToLower(s)] {
			covered++
		}
	}
	return float64(covered) / float64(len(required)), true
}

// leadershipRoles are role titles that indicate organizational leadership
// scope for executive matching.
var leadershipRoles = []string{
	"cto", "cio", "chief", "director", "head of", "vp", "transformation lead",
	"program manager", "program director", "change manager", "change lead",
}

// leadershipSignal estimates a record's leadership scope in [0,1] from its
// role title and seniority tier.
func leadershipSignal(role, seniority string) (float64, bool) {
	if role == "" && seniority == "" {
		return 0, false
	}
	signal := 0.25
	switch SeniorityTier(seniority) {
	case 5:
		signal = 1.0
	case 4:
		signal = 0.75
	case 3:
		signal = 0.5
	}
	lowRole := strings.ToLower(role)
	for _, r := range leadershipRoles {
		if strings.Contains(lowRole, r) {
			if signal < 0.9 {
				signal = 0.9
			}
			break
		}
	}
	return signal, true
}

// leadershipScore compares the posting's leadership demands against the
// candidate's scope: the closer the signals, the higher the score.
func leadershipScore(job *entity.Job, c *entity.Candidate) (float64, bool) {
	js, jok := leadershipSignal(job.Role, job.Seniority)
	cs, cok := leadershipSignal(c.Role, c.Seniority)
	if !jok || !cok {
		return 0, false
	}
	d := js - cs
	if d < 0 {
		d = -d
	}
	return 1 - d, true
}
