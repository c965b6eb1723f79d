package parts

// CriticalCSS is inlined into the landing page head so the first paint
// does not wait on a stylesheet request.
const CriticalCSS = `
:root{--accent:#4f46e5;--ink:#111827;--muted:#6b7280;--bg:#f9fafb}
*{box-sizing:border-box;margin:0}
body{font-family:system-ui,sans-serif;color:var(--ink);background:var(--bg)}
nav{position:sticky;top:0;height:64px;display:flex;align-items:center;gap:24px;padding:0 32px;background:#fff;box-shadow:0 1px 2px rgba(0,0,0,.06);z-index:10}
nav a{color:var(--muted);text-decoration:none}
nav a.active{color:var(--accent);font-weight:600}
section{min-height:60vh;padding:96px 32px}
#hero{min-height:90vh;display:flex;flex-direction:column;justify-content:center}
h1{font-size:3rem;margin-bottom:16px}
h2{font-size:2rem;margin-bottom:24px}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:24px}
.card{background:#fff;border-radius:12px;padding:16px;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.card img{width:100%;border-radius:8px}
.price{color:var(--accent);font-weight:700}
.muted{color:var(--muted)}
`
