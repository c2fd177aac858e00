package shake128

// Rounds is the number of rounds of Keccak-f[1600].
const Rounds = 24

// permute applies the Keccak-f[1600] permutation.
func permute(a State) State {
	for round := 0; round < Rounds; round++ {
		a = iotaStep(chi(pi(rho(theta(a)))), round)
	}
	return a
}
