package ring

import "github.com/campaluca/ringcrypt/xrand"

// UniformRq samples a coefficient-basis Rq element with every coefficient
// uniform in [0, Q).
func (r *RqRing) UniformRq(src *xrand.Source) Rq {
	coeffs := make([]Zq, r.DegPhi)
	for i := range coeffs {
		coeffs[i] = r.Zq.ApplyUint(src.UniformUint64(r.Zq.Q))
	}
	return Rq{Poly: New(coeffs, r.Phi.Var, Schoolbook, !r.FixedLength, r.Zq.Zero()), Parent: r, NTTForm: false}
}

// TernaryRq samples a coefficient-basis Rq element with coefficients in
// {-1, 0, 1} (spec §4.6 KeyGen step 1).
func (r *RqRing) TernaryRq(src *xrand.Source, p float64) Rq {
	vals := src.TernaryVector(r.DegPhi, p)
	coeffs := make([]Zq, r.DegPhi)
	for i, v := range vals {
		coeffs[i] = r.Zq.Apply(int64(v))
	}
	return Rq{Poly: New(coeffs, r.Phi.Var, Schoolbook, !r.FixedLength, r.Zq.Zero()), Parent: r, NTTForm: false}
}

// GaussianRq samples a coefficient-basis Rq element from a discrete Gaussian
// of width sigma (spec §4.6 KeyGen step 3).
func (r *RqRing) GaussianRq(src *xrand.Source, sigma float64) Rq {
	vals := src.GaussianVector(r.DegPhi, sigma)
	coeffs := make([]Zq, r.DegPhi)
	for i, v := range vals {
		coeffs[i] = r.Zq.Apply(v)
	}
	return Rq{Poly: New(coeffs, r.Phi.Var, Schoolbook, !r.FixedLength, r.Zq.Zero()), Parent: r, NTTForm: false}
}
