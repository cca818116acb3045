package integers

// ModInverse exposes the extended Euclidean step for defect tests.
var ModInverse = modInverse
