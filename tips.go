package cycloid

// Tips is markdown guidance for pasting the equations into a CAD equation
// driven curve.
const Tips = `## Equation Driven Curve tips

- Use **Parametric** mode and paste the two expressions (right-hand sides only).
- Set **t1 = 0** and **t2 = 2*pi**. All trig functions use *radians*.
- If the tool complains about closure, try ` + "`t2 = 2*pi - 1e-6`" + `.
- Inverse tangent is spelled ` + "`atn`" + ` in CAD equations, not ` + "`atan`" + `.
- Global variables cannot be referenced inside the curve. Drive a dimension with a global variable instead.
`
