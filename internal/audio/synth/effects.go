package synth

import "math"

// genSelect: short bright tick for picking an option.
func genSelect() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		mix[i] = fm(t, freq, 1.0, 0.6) * env * 0.38
	}
	return render(mix)
}

// genCorrect: two rising bell notes.
func genCorrect() []byte {
	notes := []float64{659.25, 987.77}
	step := int(0.08 * SampleRate)
	total := len(notes)*step + int(0.2*SampleRate)
	mix := make([]float64, total)
	for ni, freq := range notes {
		start := ni * step
		dur := total - start
		for j := range dur {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 4.0*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	return render(mix)
}

// genWrong: descending FM buzz.
func genWrong() []byte {
	n := int(0.22 * SampleRate)
	mix := make([]float64, n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 260 - 140*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.5
		s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.12
		mix[i] = s
	}
	return render(mix)
}

// genFanfare: ascending staircase, each note ringing over the next.
func genFanfare(notes []float64, stepSec float64) []byte {
	step := int(stepSec * SampleRate)
	total := len(notes)*step + int(0.35*SampleRate)
	mix := make([]float64, total)
	for ni, freq := range notes {
		start := ni * step
		dur := total - start
		for j := range dur {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.26
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return render(mix)
}

// genChime: a single soft major triad.
func genChime() []byte {
	n := int(0.6 * SampleRate)
	chord := []float64{392.00, 493.88, 587.33}
	mix := make([]float64, n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.25, 0.5)
		for _, f := range chord {
			mix[i] += fm(t, f, 2.0, 1.2*env) * env * 0.16
		}
	}
	return render(mix)
}

// genRumble: low filtered noise under a slow descending minor chord.
func genRumble() []byte {
	n := int(0.9 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00},
		{261.63, 0.14},
		{220.00, 0.28},
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.26
		}
	}
	seed := uint64(90210)
	lp := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		lp = lp*0.97 + lcg(&seed)*0.03
		mix[i] += lp * (1 - p) * 1.4
	}
	return render(mix)
}

// genWhoosh: band-swept noise rising in pitch.
func genWhoosh() []byte {
	n := int(0.3 * SampleRate)
	mix := make([]float64, n)
	seed := uint64(4242)
	lp := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		k := 0.05 + 0.4*p
		lp = lp*(1-k) + lcg(&seed)*k
		mix[i] = lp * math.Sin(math.Pi*p) * 0.45
	}
	return render(mix)
}
