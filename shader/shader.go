package shader

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

const blitFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, frag_uv); }
`

// RGB to planar BT.709 YUV for the encoder. Rows are flipped so plane row 0
// is the top of the image.
const yuvFragmentShaderSourceGL = `#version 410 core
in  vec2 frag_uv;
layout(location = 0) out uint y_out;
layout(location = 1) out uint u_out;
layout(location = 2) out uint v_out;

uniform sampler2D u_texture;

// column-major
const mat3 RGB_TO_YUV = mat3(
    vec3( 0.2126, -0.1146,  0.5000),
    vec3( 0.7152, -0.3854, -0.4542),
    vec3( 0.0722,  0.5000, -0.0458)
);

void main()
{
    vec3 rgb = clamp(texture(u_texture, vec2(frag_uv.x, 1.0 - frag_uv.y)).rgb, 0.0, 1.0);
    vec3 yuv = RGB_TO_YUV * rgb;
    y_out = uint(round(clamp(yuv.x * 219.0 + 16.0, 16.0, 235.0)));
    u_out = uint(round(clamp(yuv.y * 224.0 + 128.0, 16.0, 240.0)));
    v_out = uint(round(clamp(yuv.z * 224.0 + 128.0, 16.0, 240.0)));
}
`

const sceneVertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec3 in_position;
layout (location = 1) in vec3 in_normal;
layout (location = 2) in vec3 in_color;

uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;

out vec3 v_normal;
out vec3 v_color;

void main() {
    v_normal = mat3(u_model) * in_normal;
    v_color = in_color;
    gl_Position = u_projection * u_view * u_model * vec4(in_position, 1.0);
}
`

// Lambert: ambient plus one directional light, no specular.
const sceneFragmentShaderSourceGL = `#version 410 core
in vec3 v_normal;
in vec3 v_color;
out vec4 fragColor;

uniform int  u_lit;
uniform vec3 u_ambient;
uniform vec3 u_lightColor;
uniform vec3 u_lightDir;

void main() {
    vec3 color = v_color;
    if (u_lit != 0) {
        float ndl = max(dot(normalize(v_normal), u_lightDir), 0.0);
        color = v_color * (u_ambient + u_lightColor * ndl);
    }
    fragColor = vec4(color, 1.0);
}
`

// ─────────────────────────────── Post passes (WebGL2) ───────────────────────────────
//
// Pass shaders are translated to the desktop dialect at startup. They take no
// varyings; the texture coordinate comes from gl_FragCoord and the size of
// tDiffuse, which always matches the output.

const depthFragmentShaderSource = `#version 300 es
precision highp float;

uniform sampler2D tDepth;
uniform sampler2D tDiffuse;
uniform float cameraNear;
uniform float cameraFar;
uniform float t;

out vec4 fragColor;

float perspectiveDepthToViewZ(const in float invClipZ, const in float near, const in float far) {
    return (near * far) / ((far - near) * invClipZ - far);
}

vec4 readDepth(sampler2D depthSampler, vec2 coord) {
    float fragCoordZ = texture(depthSampler, coord).x;
    float viewZ = perspectiveDepthToViewZ(fragCoordZ, cameraNear, cameraFar);
    float d = clamp(1.0 - fragCoordZ, 0.0, 1.0);
    return vec4(d, d, d, 1.0);
}

void main() {
    vec2 vUv = gl_FragCoord.xy / vec2(textureSize(tDiffuse, 0));
    vec4 color = texture(tDiffuse, vUv);
    vec4 depth = readDepth(tDepth, vUv);
    fragColor = mix(color, depth, t);
}
`

const oceanFragmentShaderSource = `#version 300 es
precision highp float;

uniform vec3 iResolution;
uniform float iTime;
uniform sampler2D tDepth;
uniform sampler2D tDiffuse;
uniform float cameraNear;
uniform float cameraFar;
uniform vec3 cameraAngle;
uniform vec3 cameraOrigin;

out vec4 fragColor;

/*
 * "Seascape" by Alexander Alekseev aka TDM - 2014
 * License Creative Commons Attribution-NonCommercial-ShareAlike 3.0 Unported License.
 * Contact: tdmaav@gmail.com
 */

const int NUM_STEPS = 8;
const float PI = 3.141592;
#define EPSILON_NRM (0.1 / iResolution.x)

const int ITER_GEOMETRY = 1;
const int ITER_FRAGMENT = 2;
const float SEA_HEIGHT = 0.6;
const float SEA_CHOPPY = 4.0;
const float SEA_SPEED = 0.8;
const float SEA_FREQ = 0.16;
const vec3 SEA_BASE = vec3(0.0, 0.09, 0.18);
const vec3 SEA_WATER_COLOR = vec3(0.8, 0.9, 0.6) * 0.6;
#define SEA_TIME (1.0 + iTime * SEA_SPEED)
const mat2 octave_m = mat2(1.6, 1.2, -1.2, 1.6);

mat3 fromEuler(vec3 ang) {
    vec2 a1 = vec2(sin(ang.x), cos(ang.x));
    vec2 a2 = vec2(sin(ang.y), cos(ang.y));
    vec2 a3 = vec2(sin(ang.z), cos(ang.z));
    mat3 m;
    m[0] = vec3(a1.y*a3.y + a1.x*a2.x*a3.x, a1.y*a2.x*a3.x + a3.y*a1.x, -a2.y*a3.x);
    m[1] = vec3(-a2.y*a1.x, a1.y*a2.y, a2.x);
    m[2] = vec3(a3.y*a1.x*a2.x + a1.y*a3.x, a1.x*a3.x - a1.y*a3.y*a2.x, a2.y*a3.y);
    return m;
}

float hash(vec2 p) {
    float h = dot(p, vec2(127.1, 311.7));
    return fract(sin(h) * 43758.5453123);
}

float noise(in vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    vec2 u = f * f * (3.0 - 2.0 * f);
    return -1.0 + 2.0 * mix(mix(hash(i + vec2(0.0, 0.0)), hash(i + vec2(1.0, 0.0)), u.x),
                            mix(hash(i + vec2(0.0, 1.0)), hash(i + vec2(1.0, 1.0)), u.x), u.y);
}

float diffuse(vec3 n, vec3 l, float p) {
    return pow(dot(n, l) * 0.4 + 0.6, p);
}

float specular(vec3 n, vec3 l, vec3 e, float s) {
    float nrm = (s + 8.0) / (PI * 8.0);
    return pow(max(dot(reflect(e, n), l), 0.0), s) * nrm;
}

vec3 getSkyColor(vec3 e) {
    e.y = (max(e.y, 0.0) * 0.8 + 0.2) * 0.8;
    return vec3(pow(1.0 - e.y, 2.0), 1.0 - e.y, 0.6 + (1.0 - e.y) * 0.4) * 1.1;
}

float sea_octave(vec2 uv, float choppy) {
    uv += noise(uv);
    vec2 wv = 1.0 - abs(sin(uv));
    vec2 swv = abs(cos(uv));
    wv = mix(wv, swv, wv);
    return pow(1.0 - pow(wv.x * wv.y, 0.65), choppy);
}

float seaHeight(vec3 p, int iterations) {
    float freq = SEA_FREQ;
    float amp = SEA_HEIGHT;
    float choppy = SEA_CHOPPY;
    vec2 uv = p.xz; uv.x *= 0.75;

    float d, h = 0.0;
    for (int i = 0; i < iterations; i++) {
        d = sea_octave((uv + SEA_TIME) * freq, choppy);
        d += sea_octave((uv - SEA_TIME) * freq, choppy);
        h += d * amp;
        uv *= octave_m; freq *= 1.9; amp *= 0.22;
        choppy = mix(choppy, 1.0, 0.2);
    }
    return h;
}

float map(vec3 p) {
    return p.y - seaHeight(p, ITER_GEOMETRY);
}

float map_detailed(vec3 p) {
    return p.y - seaHeight(p, ITER_FRAGMENT);
}

vec3 getSeaColor(vec3 p, vec3 n, vec3 l, vec3 eye, vec3 dist) {
    float fresnel = clamp(1.0 - dot(n, -eye), 0.0, 1.0);
    fresnel = pow(fresnel, 3.0) * 0.5;

    vec3 reflected = getSkyColor(reflect(eye, n));
    vec3 refracted = SEA_BASE + diffuse(n, l, 80.0) * SEA_WATER_COLOR * 0.12;

    vec3 color = mix(refracted, reflected, fresnel);

    float atten = max(1.0 - dot(dist, dist) * 0.001, 0.0);
    color += SEA_WATER_COLOR * (p.y - SEA_HEIGHT) * 0.18 * atten;

    color += vec3(specular(n, l, eye, 60.0));

    return color;
}

vec3 getNormal(vec3 p, float eps) {
    vec3 n;
    n.y = map_detailed(p);
    n.x = map_detailed(vec3(p.x + eps, p.y, p.z)) - n.y;
    n.z = map_detailed(vec3(p.x, p.y, p.z + eps)) - n.y;
    n.y = eps;
    return normalize(n);
}

// p is always written: on a miss it is the far bound sample.
float heightMapTracing(vec3 ori, vec3 dir, out vec3 p) {
    float tm = 0.0;
    float tx = 1000.0;
    float hx = map(ori + dir * tx);
    if (hx > 0.0) {
        p = ori + dir * tx;
        return tx;
    }
    float hm = map(ori + dir * tm);
    float tmid = 0.0;
    for (int i = 0; i < NUM_STEPS; i++) {
        tmid = mix(tm, tx, hm / (hm - hx));
        p = ori + dir * tmid;
        float hmid = map(p);
        if (hmid < 0.0) {
            tx = tmid;
            hx = hmid;
        } else {
            tm = tmid;
            hm = hmid;
        }
    }
    return tmid;
}

vec3 getRayDirection(vec2 coord) {
    vec2 uv = coord / iResolution.xy;
    uv = uv * 2.0 - 1.0;
    uv.x *= iResolution.x / iResolution.y;

    vec3 dir = normalize(vec3(uv.xy, -2.0));
    dir.z += length(uv) * 0.14;
    return normalize(dir) * fromEuler(cameraAngle);
}

void mainImage(out vec4 rayColor, out float rayDistance, in vec2 fragCoord) {
    vec3 ori = cameraOrigin;
    vec3 dir = getRayDirection(fragCoord);

    vec3 p;
    heightMapTracing(ori, dir, p);
    vec3 dist = p - ori;
    vec3 n = getNormal(p, dot(dist, dist) * EPSILON_NRM);
    vec3 light = normalize(vec3(0.0, 1.0, 0.8));

    vec3 color = mix(
        getSkyColor(dir),
        getSeaColor(p, n, light, dir, dist),
        pow(smoothstep(0.0, -0.02, dir.y), 0.2));

    rayColor = vec4(pow(max(color, vec3(0.0)), vec3(0.65)), 1.0);
    rayDistance = length(dist);
}

float perspectiveDepthToViewZ(const in float invClipZ, const in float near, const in float far) {
    return (near * far) / ((far - near) * invClipZ - far);
}

float readDepth(sampler2D depthSampler, vec2 coord) {
    float fragCoordZ = texture(depthSampler, coord).x;
    float viewZ = perspectiveDepthToViewZ(fragCoordZ, cameraNear, cameraFar);
    float d = 1.0 - fragCoordZ;
    return 1.0 - (d * 100.0);
}

void main() {
    vec2 vUv = gl_FragCoord.xy / vec2(textureSize(tDiffuse, 0));

    vec4 rayMarchColor;
    float rayMarchDistance;
    mainImage(rayMarchColor, rayMarchDistance, gl_FragCoord.xy);

    rayMarchDistance = clamp(rayMarchDistance / 10.0, 0.0, 1.0);
    vec4 sceneColor = texture(tDiffuse, vUv);
    float sceneDistance = clamp(readDepth(tDepth, vUv), 0.0, 1.0);
    if (rayMarchDistance < sceneDistance || sceneDistance > 0.9999999) {
        fragColor = rayMarchColor;
    } else {
        fragColor = sceneColor;
    }
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// GenerateVertexShader is the full-screen quad vertex shader shared by every
// post pass.
func GenerateVertexShader() string {
	return vertexShaderSourceGL
}

func GetBlitFragmentShader() string {
	return blitFragmentShaderSourceGL
}

func GetYUVFragmentShader() string {
	return yuvFragmentShaderSourceGL
}

func SceneVertexShader() string {
	return sceneVertexShaderSourceGL
}

func SceneFragmentShader() string {
	return sceneFragmentShaderSourceGL
}

// DepthFragmentShader is the depth visualization pass in WebGL2 GLSL.
func DepthFragmentShader() string {
	return depthFragmentShaderSource
}

// OceanFragmentShader is the raymarched ocean pass in WebGL2 GLSL.
func OceanFragmentShader() string {
	return oceanFragmentShaderSource
}
