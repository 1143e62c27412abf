package agp

import (
	"fmt"
	"math"
)

// DetectPatterns scans a computed profile for notable clinical patterns and
// returns short human-readable findings in rule-evaluation order, without
// deduplication. Returns nil for a nil profile or when nothing fires.
func DetectPatterns(profile *Profile) []string {
	if profile == nil || len(profile.P50) == 0 {
		return nil
	}

	d := &detector{
		profile:    profile,
		ptsPerHour: len(profile.P50) / hoursPerDay,
	}
	if d.ptsPerHour < 1 {
		return nil
	}

	d.iqr = subtract(profile.P75, profile.P25)
	d.outerBand = subtract(profile.P90, profile.P10)

	d.detectHypoglycemia()
	d.detectHyperglycemia()
	d.detectMealSpikes()
	d.detectDawnPhenomenon()
	d.detectSomogyiEffect()
	d.detectFastingPatterns()
	d.detectMealResponses()
	d.detectVariability()
	d.detectTightControl()
	d.detectOverall()
	d.detectConsistency()

	if len(d.findings) == 0 {
		return nil
	}
	return d.findings
}

type detector struct {
	profile    *Profile
	ptsPerHour int
	iqr        []float64
	outerBand  []float64
	findings   []string
}

func (d *detector) add(format string, args ...any) {
	d.findings = append(d.findings, fmt.Sprintf(format, args...))
}

// periodIndices returns the grid indices of a day-part, handling periods
// that wrap past midnight.
func (d *detector) periodIndices(period TimePeriod) []int {
	if period.Start > period.End {
		indices := indexRange(period.Start*d.ptsPerHour, hoursPerDay*d.ptsPerHour)
		return append(indices, indexRange(0, period.End*d.ptsPerHour)...)
	}
	return indexRange(period.Start*d.ptsPerHour, period.End*d.ptsPerHour)
}

// hypoSeverity is an ordered chain: only the most severe matching level
// fires for a day-part.
type hypoSeverity int

const (
	hypoNone hypoSeverity = iota
	hypoConsistent
	hypoSporadicSevere
	hypoRecurring
)

func classifyHypo(min50, min10, min25 float64) hypoSeverity {
	switch {
	case min50 < HypoThreshold:
		return hypoConsistent
	case min10 < SevereHypoThreshold:
		return hypoSporadicSevere
	case min25 < HypoThreshold:
		return hypoRecurring
	default:
		return hypoNone
	}
}

func (d *detector) detectHypoglycemia() {
	for _, period := range TimePeriods {
		indices := d.periodIndices(period)
		if len(indices) == 0 {
			continue
		}

		severity := classifyHypo(
			minAt(d.profile.P50, indices),
			minAt(d.profile.P10, indices),
			minAt(d.profile.P25, indices),
		)
		switch severity {
		case hypoConsistent:
			d.add("Consistent hypoglycemia during %s period", period.Name)
		case hypoSporadicSevere:
			d.add("Sporadic, very dangerous hypoglycemia during %s period", period.Name)
		case hypoRecurring:
			d.add("Recurring hypoglycemia during %s period", period.Name)
		}
	}
}

type hyperSeverity int

const (
	hyperNone hyperSeverity = iota
	hyperVeryHigh
	hyperElevated
	hyperFrequent
)

func classifyHyper(mean50, mean75 float64) hyperSeverity {
	switch {
	case mean50 > VeryHigh:
		return hyperVeryHigh
	case mean50 > TargetHigh:
		return hyperElevated
	case mean75 > TargetHigh:
		return hyperFrequent
	default:
		return hyperNone
	}
}

func (d *detector) detectHyperglycemia() {
	for _, period := range TimePeriods {
		indices := d.periodIndices(period)
		if len(indices) == 0 {
			continue
		}

		switch classifyHyper(meanAt(d.profile.P50, indices), meanAt(d.profile.P75, indices)) {
		case hyperVeryHigh:
			d.add("Very high glucose during %s period", period.Name)
		case hyperElevated:
			d.add("Elevated glucose during %s period", period.Name)
		case hyperFrequent:
			d.add("Frequent glucose elevations during %s period", period.Name)
		}
	}
}

func (d *detector) detectMealSpikes() {
	for _, meal := range mealWindows {
		preIdx := meal.pre * d.ptsPerHour
		startIdx := meal.start * d.ptsPerHour
		endIdx := meal.end * d.ptsPerHour
		if endIdx > len(d.profile.P50) {
			continue
		}

		preMeal := mean(d.profile.P50[preIdx:startIdx])
		postMeal := maxOf(d.profile.P50[startIdx:endIdx])
		if postMeal-preMeal > MealSpikeThreshold {
			d.add("Post-%s glucose spike", meal.name)
		}
	}
}

func (d *detector) detectDawnPhenomenon() {
	startIdx := DawnStartHour * d.ptsPerHour
	endIdx := DawnEndHour * d.ptsPerHour
	halfHour := d.ptsPerHour / 2
	if halfHour < 1 {
		halfHour = 1
	}
	if endIdx > len(d.profile.P50) {
		return
	}

	dawnStart := mean(d.profile.P50[startIdx : startIdx+halfHour])
	dawnEnd := mean(d.profile.P50[endIdx-halfHour : endIdx])
	if dawnEnd-dawnStart > DawnRiseThreshold {
		d.add("Dawn phenomenon detected")
	}
}

func (d *detector) detectSomogyiEffect() {
	nightStart := SomogyiNightStartHour * d.ptsPerHour
	nightEnd := SomogyiNightEndHour * d.ptsPerHour
	morningStart := SomogyiMorningStartHour * d.ptsPerHour
	morningEnd := SomogyiMorningEndHour * d.ptsPerHour
	if morningEnd > len(d.profile.P50) {
		return
	}

	nightMin := minOf(d.profile.P50[nightStart:nightEnd])
	morningMean := mean(d.profile.P50[morningStart:morningEnd])
	if nightMin < HypoThreshold && morningMean > TargetHigh {
		d.add("Possible rebound hyperglycemia (Somogyi effect)")
	}
}

type fastingQuality int

const (
	fastingUnremarkable fastingQuality = iota
	fastingElevated
	fastingOptimal
	fastingLow
)

func classifyFasting(median, iqr float64) fastingQuality {
	switch {
	case median > FastingTargetHigh:
		return fastingElevated
	case median >= FastingOptimalLow && median <= FastingOptimalHigh && iqr < TightIQR:
		return fastingOptimal
	case median < FastingOptimalLow:
		return fastingLow
	default:
		return fastingUnremarkable
	}
}

func (d *detector) detectFastingPatterns() {
	startIdx := FastingStartHour * d.ptsPerHour
	endIdx := FastingEndHour * d.ptsPerHour
	if endIdx > len(d.profile.P50) {
		return
	}

	median := mean(d.profile.P50[startIdx:endIdx])
	iqr := mean(d.iqr[startIdx:endIdx])

	switch classifyFasting(median, iqr) {
	case fastingElevated:
		d.add("Elevated fasting glucose levels")
	case fastingOptimal:
		d.add("Optimal fasting glucose control")
	case fastingLow:
		d.add("Low fasting glucose levels")
	}
}

// mealResponse is the shape of the median curve after one meal window.
type mealResponse struct {
	baseline          float64
	rise              float64
	timeToPeakMinutes int
	elevatedMinutes   int
	finalValue        float64
	recovered         bool
}

func (d *detector) analyzeMealResponse(meal mealWindow) mealResponse {
	p50 := d.profile.P50
	preIdx := meal.pre * d.ptsPerHour
	startIdx := meal.start * d.ptsPerHour
	endIdx := meal.end * d.ptsPerHour
	minutesPerPoint := 60 / d.ptsPerHour

	baseline := mean(p50[preIdx:startIdx])
	window := p50[startIdx:endIdx]

	peak := window[0]
	peakIdx := 0
	for i, v := range window {
		if v > peak {
			peak = v
			peakIdx = i
		}
	}

	elevated := 0
	for _, v := range window {
		if v > baseline+ElevationThresholdOffset {
			elevated++
		}
	}

	halfHour := d.ptsPerHour / 2
	if halfHour < 1 {
		halfHour = 1
	}
	finalValue := mean(p50[endIdx-halfHour : endIdx])

	return mealResponse{
		baseline:          baseline,
		rise:              peak - baseline,
		timeToPeakMinutes: peakIdx * minutesPerPoint,
		elevatedMinutes:   elevated * minutesPerPoint,
		finalValue:        finalValue,
		recovered:         math.Abs(finalValue-baseline) < RecoveryThreshold,
	}
}

func (d *detector) detectMealResponses() {
	for _, meal := range mealWindows {
		if meal.end*d.ptsPerHour > len(d.profile.P50) {
			continue
		}
		response := d.analyzeMealResponse(meal)

		if response.timeToPeakMinutes < RapidSpikeTimeThreshold && response.rise > RapidSpikeRiseThreshold {
			d.add("Rapid post-%s glucose spike", meal.name)
		}
		if response.elevatedMinutes > ProlongedElevationDuration {
			d.add("Extended post-%s elevation", meal.name)
		}
		if !response.recovered && response.finalValue > response.baseline+RecoveryThresholdDelayed {
			d.add("Slow post-%s glucose recovery", meal.name)
		}
		if response.rise > GoodMealRiseMin && response.rise < GoodMealRiseMax &&
			response.timeToPeakMinutes > GoodMealPeakTimeMin && response.timeToPeakMinutes < GoodMealPeakTimeMax &&
			response.recovered {
			d.add("Well-controlled post-%s glucose response", meal.name)
		}
	}
}

func (d *detector) detectVariability() {
	for _, period := range TimePeriods {
		indices := d.periodIndices(period)
		if len(indices) == 0 {
			continue
		}
		if meanAt(d.iqr, indices) > WideIQR {
			d.add("High glucose variability during %s period", period.Name)
		}
	}
}

func (d *detector) detectTightControl() {
	for _, period := range TimePeriods {
		indices := d.periodIndices(period)
		if len(indices) == 0 {
			continue
		}

		median := meanAt(d.profile.P50, indices)
		inOptimal := median >= OptimalLow && median <= OptimalHigh
		if inOptimal && meanAt(d.iqr, indices) < TightIQR {
			d.add("Tight glucose control during %s period", period.Name)
		}
	}
}

func (d *detector) detectOverall() {
	median := mean(d.profile.P50)
	iqr := mean(d.iqr)

	switch {
	case median >= OptimalLow && median <= OptimalHigh && iqr < TightIQR:
		d.add("Excellent overall glucose control")
	case median < HypoThreshold:
		d.add("Overall glucose trending low")
	case median > TargetHigh:
		d.add("Overall glucose trending high")
	}
}

func (d *detector) detectConsistency() {
	for _, period := range TimePeriods {
		indices := d.periodIndices(period)
		if len(indices) == 0 {
			continue
		}

		band := meanAt(d.outerBand, indices)
		if band > InconsistentOuterBand {
			d.add("Inconsistent glucose patterns during %s period", period.Name)
		} else if band < ConsistentOuterBand {
			d.add("Consistent glucose patterns during %s period", period.Name)
		}
	}
}

func indexRange(start, end int) []int {
	indices := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indices = append(indices, i)
	}
	return indices
}

func subtract(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minAt(values []float64, indices []int) float64 {
	m := values[indices[0]]
	for _, i := range indices[1:] {
		if values[i] < m {
			m = values[i]
		}
	}
	return m
}
