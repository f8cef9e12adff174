// Package lvfit fits models to experimental data: dense matrices, ordinary
// least squares and Gauss-Newton nonlinear regression.
//
// 🚀 What is lvfit?
//
//	A small numerical core for analysis programs that fit physical models
//	(diffusion, sorption isotherms, creep and relaxation) to measurements:
//		• Matrix primitives: dense storage, products, transpose, pivoted-LU inverse
//		• Linear regression: normal equations, polynomial fits, R²
//		• Nonlinear regression: Gauss-Newton with a forward-difference Jacobian
//		• Batch fitting: many independent windows of one data set in parallel
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix:  Dense, Vector, arithmetic, LU/Inverse/Solve, columns, parsing, gonum bridge
//	regress: Regress, Predict, PolyDesign/PolyFit/PolyEval, RSquared/RSquaredOf
//	fitnlm:  Fit, FitMulti, FitAux, Jacobian, Residuals, Options (YAML-decodable)
//	batch:   Chunks and FitChunks on a bounded errgroup
//
// Quick example (y = 1 + 2x):
//
//	x, _ := matrix.FromColumn([]float64{0, 1, 2, 3})
//	y, _ := matrix.FromColumn([]float64{1, 3, 5, 7})
//	beta, _ := regress.PolyFit(x, y, 1) // [1; 2]
//
//	go get github.com/katalvlaran/lvfit
package lvfit
