package renderer

const partVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = normalize(mat3(transpose(inverse(uModel))) * aNormal);
	gl_Position = uViewProj * world;
}
`

const partFragmentShader = `
#version 410 core

#define MAX_POINT_LIGHTS 4

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uBaseColor;
uniform vec3 uGlowColor;
uniform float uGlowIntensity;
uniform float uMetalness;
uniform float uRoughness;
uniform vec3 uCameraPos;

uniform vec3 uAmbient;
uniform vec3 uKeyDir;
uniform vec3 uKeyColor;
uniform int uPointCount;
uniform vec3 uPointPos[MAX_POINT_LIGHTS];
uniform vec3 uPointColor[MAX_POINT_LIGHTS];
uniform float uPointRange[MAX_POINT_LIGHTS];

out vec4 FragColor;

vec3 shade(vec3 n, vec3 v, vec3 l, vec3 radiance) {
	vec3 h = normalize(l + v);
	float shininess = mix(96.0, 4.0, uRoughness);
	vec3 specTint = mix(vec3(0.04), uBaseColor, uMetalness);
	vec3 diffuse = uBaseColor * (1.0 - 0.6 * uMetalness) * max(dot(n, l), 0.0);
	vec3 specular = specTint * pow(max(dot(n, h), 0.0), shininess);
	return (diffuse + specular) * radiance;
}

void main() {
	vec3 n = normalize(vNormal);
	vec3 v = normalize(uCameraPos - vWorldPos);

	vec3 color = uAmbient * uBaseColor;
	color += shade(n, v, normalize(uKeyDir), uKeyColor);

	for (int i = 0; i < uPointCount && i < MAX_POINT_LIGHTS; i++) {
		vec3 toLight = uPointPos[i] - vWorldPos;
		float falloff = clamp(1.0 - length(toLight) / uPointRange[i], 0.0, 1.0);
		color += shade(n, v, normalize(toLight), uPointColor[i] * falloff);
	}

	color += uGlowColor * uGlowIntensity;
	FragColor = vec4(color, 1.0);
}
`

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`
