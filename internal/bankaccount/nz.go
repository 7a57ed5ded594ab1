package bankaccount

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/allisson/idsmith/internal/checksum"
	"github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/solver"
)

// NZ account numbers are 16 digits: bank (2) + branch (4) + account (7) + suffix (3).
// The checksum dialect depends on the bank and, for dialect A, on the account number
// itself, so generation goes through the constrained solver.
const nzLength = 16

// nzDialects holds one weighting scheme per NZ checksum algorithm.
var nzDialects = map[byte]solver.Dialect{
	'A': {Name: "A", Weights: []int{0, 0, 6, 3, 7, 9, 0, 10, 5, 8, 4, 2, 1, 0, 0, 0}, ProductModulus: 11, Modulus: 11},
	'B': {Name: "B", Weights: []int{0, 0, 0, 0, 0, 0, 0, 10, 5, 8, 4, 2, 1, 0, 0, 0}, ProductModulus: 11, Modulus: 11},
	'D': {Name: "D", Weights: []int{0, 0, 0, 0, 0, 0, 7, 6, 5, 4, 3, 2, 1, 0, 0, 0}, ProductModulus: 11, Modulus: 11},
	'E': {Name: "E", Weights: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 4, 3, 2, 0, 0, 1}, ProductModulus: 9, Modulus: 11},
	'F': {Name: "F", Weights: []int{0, 0, 0, 0, 0, 0, 1, 7, 3, 1, 7, 3, 1, 0, 0, 0}, ProductModulus: 10, Modulus: 10},
	'G': {Name: "G", Weights: []int{0, 0, 0, 0, 0, 0, 1, 3, 7, 1, 3, 7, 1, 3, 7, 1}, ProductModulus: 9, Modulus: 10},
	'X': {Name: "X", Modulus: 1},
}

// nzAlgorithms maps every valid bank code to its checksum algorithm.
var nzAlgorithms = map[int]byte{
	1: 'A', 2: 'A', 3: 'A', 4: 'A', 6: 'A', 8: 'D', 9: 'E', 10: 'A', 11: 'A', 12: 'A',
	13: 'A', 14: 'A', 15: 'A', 16: 'A', 17: 'A', 18: 'A', 19: 'A', 20: 'A', 21: 'A',
	22: 'A', 23: 'A', 24: 'A', 25: 'F', 26: 'G', 27: 'A', 28: 'G', 29: 'G', 30: 'A',
	31: 'X', 33: 'F', 35: 'A', 38: 'A',
}

// nzBranches lists real branch numbers for the banks used when no bank code is given.
var nzBranches = map[int][]int{
	1:  {1, 142, 297, 450, 653, 795, 1108, 1146, 1184, 1822},
	2:  {18, 240, 390, 520, 644, 792, 918, 1215, 1252, 1295},
	3:  {31, 239, 442, 639, 814, 1313, 1387, 1544, 1704, 1768},
	4:  {2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023},
	6:  {6, 172, 257, 350, 437, 529, 596, 738, 851, 939},
	8:  {6501, 6504, 6515, 6523, 6533, 6543, 6557, 6567, 6581, 6589},
	10: {5165, 5166, 5167, 5168, 5169},
	11: {5000, 5314, 5462, 5832, 6424, 6919, 7278, 7446, 7920, 8381},
	12: {3001, 3047, 3091, 3137, 3182, 3231, 3275, 3426, 3483, 3632},
	13: {4901, 4903, 4905, 4908, 4910, 4913, 4915, 4917, 4926, 4928},
	14: {4701, 4705, 4713, 4723, 4729, 4739, 4763, 4769, 4779, 4795},
	15: {3941, 3944, 3948, 3951, 3955, 3958, 3969, 3972, 3976, 3979},
	16: {4402, 4409, 4425, 4436, 4446, 4453, 4463, 4472, 4481, 4488},
	17: {3331, 3361, 3365, 3369, 3373, 3377, 3381, 3385, 3389, 3393},
	18: {3501, 3504, 3507, 3510, 3513, 3516, 3519, 3522, 3525, 3530},
	19: {4617, 4618, 4620, 4621, 4624, 4626, 4629, 4631, 4635, 4647},
	20: {4121, 4123, 4126, 4129, 4132, 4135, 4138, 4141, 4145, 4169},
	21: {4801, 4804, 4808, 4811, 4815, 4819, 4822, 4826, 4829, 4895},
	22: {4000, 4003, 4005, 4007, 4009, 4022, 4024, 4028, 4031, 4033},
	23: {3700, 3703, 3716, 3730, 3736, 3750, 3758, 3765, 3784, 3792},
	24: {4310, 4311, 4312, 4316, 4319, 4321, 4330, 4335, 4337, 4338},
	25: {2500, 2510, 2525, 2531, 2537, 2543, 2548, 2554, 2559, 2565},
	27: {3801, 3802, 3803, 3816, 3817, 3820, 3821, 3822, 3824, 3825},
	30: {2901, 2902, 2904, 2906, 2908, 2911, 2912, 2922, 2932, 2940},
	31: {2825, 2826, 2827, 2828, 2829, 2840},
	38: {9000, 9050, 9100, 9150, 9200, 9250, 9300, 9350, 9400, 9450},
}

// nzBranchBanks is the sorted key set of nzBranches, for uniform draws.
var nzBranchBanks = []int{1, 2, 3, 4, 6, 8, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 27, 30, 31, 38}

// nzBThreshold is the account number from which algorithm A switches to B.
const nzBThreshold = 990000

// nzFree are the account digits searched by the solver.
var nzFree = []int{11, 12}

// nzSelect is the single dialect selection used by generation and validation. Callers
// must have checked the bank code.
func nzSelect(d []int) solver.Dialect {
	algorithm := nzAlgorithms[d[0]*10+d[1]]
	if algorithm == 'A' {
		account := 0
		for _, v := range d[6:13] {
			account = account*10 + v
		}
		if account >= nzBThreshold {
			algorithm = 'B'
		}
	}
	return nzDialects[algorithm]
}

type nzCodec struct {
	maxAttempts int
}

func (c nzCodec) problem(bank int) solver.Problem {
	branches := nzBranches[bank]
	return solver.Problem{
		Length: nzLength,
		Fill: func(rng *rand.Rand, d []int) {
			branch := between(rng, 1, 9999)
			if len(branches) > 0 {
				branch = branches[rng.IntN(len(branches))]
			}
			suffix := rng.IntN(100)
			assignNumber(d[0:2], bank)
			assignNumber(d[2:6], branch)
			for i := 6; i < 13; i++ {
				d[i] = rng.IntN(10)
			}
			assignNumber(d[13:16], suffix)
		},
		Select:      nzSelect,
		Free:        nzFree,
		MaxAttempts: c.maxAttempts,
	}
}

func assignNumber(dst []int, v int) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = v % 10
		v /= 10
	}
}

func (c nzCodec) Generate(opts domain.GenOptions, rng *rand.Rand) (domain.Result, error) {
	bank := nzBranchBanks[rng.IntN(len(nzBranchBanks))]
	if opts.BankCode != "" {
		code, err := strconv.Atoi(opts.BankCode)
		if _, known := nzAlgorithms[code]; err != nil || !known {
			return domain.Result{}, errors.Wrapf(domain.ErrInvalidOption, "unknown NZ bank code %q", opts.BankCode)
		}
		bank = code
	}

	d, err := solver.Solve(c.problem(bank), rng)
	if err != nil {
		return domain.Result{}, err
	}
	raw := checksum.String(d)
	result := c.Parse(raw)
	result.Formatted = formatNZ(raw)
	return result, nil
}

func (c nzCodec) Validate(raw string) bool {
	s, ok := compactDigits(raw)
	if !ok || len(s) != nzLength {
		return false
	}
	d, _ := checksum.Digits(s)
	if _, known := nzAlgorithms[d[0]*10+d[1]]; !known {
		return false
	}
	return c.problem(0).Verify(d)
}

func (nzCodec) Format(raw string) string {
	s, _ := compactDigits(raw)
	return formatNZ(s)
}

func (nzCodec) Parse(raw string) domain.Result {
	s, _ := compactDigits(raw)
	return domain.Result{
		Raw:           s,
		BankCode:      s[:2],
		BranchCode:    s[2:6],
		AccountNumber: s[6:13],
	}
}

func formatNZ(s string) string {
	return fmt.Sprintf("%s-%s-%s-%s", s[:2], s[2:6], s[6:13], s[13:])
}
