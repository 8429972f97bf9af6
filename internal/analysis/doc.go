// Package analysis provides spectral tools for inspecting emitted frames.
//
//   - [FFT]: discrete Fourier transform of a frame of any length
//   - [PowerSpectrum]: magnitude of wavenumbers 0..N/2
//   - [DominantMode]: strongest non-constant wavenumber
//
// The Lax scheme damps short wavelengths fastest, so comparing the spectrum
// of an early frame with a late one shows the numerical diffusion:
//
//	early := analysis.PowerSpectrum(frames[0].Values)
//	late := analysis.PowerSpectrum(frames[len(frames)-1].Values)
//	ratio := analysis.Energy(late) / analysis.Energy(early)
package analysis
