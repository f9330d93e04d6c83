package stilllife

// Uniform names shared between the Go side and the GLSL below. The
// scene script addresses everything through these.
const (
	uniformModel       = "model"
	uniformView        = "view"
	uniformProjection  = "projection"
	uniformViewPos     = "viewPosition"
	uniformColor       = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"
)

const sceneVertexShader = `#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inTexCoord;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	fragPosition = vec3(model * vec4(inPosition, 1.0));
	fragNormal = mat3(transpose(inverse(model))) * inNormal;
	fragTexCoord = inTexCoord;
	gl_Position = projection * view * vec4(fragPosition, 1.0);
}
`

const sceneFragmentShader = `#version 410 core
#define TOTAL_LIGHTS 4

struct Material {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct LightSource {
	vec3 position;
	vec3 ambientColor;
	vec3 diffuseColor;
	vec3 specularColor;
	float focalStrength;
	float specularIntensity;
};

in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;

out vec4 outColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[TOTAL_LIGHTS];

void main() {
	vec4 baseColor;
	if (bUseTexture) {
		baseColor = texture(objectTexture, fragTexCoord * UVscale);
	} else {
		baseColor = objectColor;
	}

	if (!bUseLighting) {
		outColor = baseColor;
		return;
	}

	vec3 normal = normalize(fragNormal);
	vec3 viewDir = normalize(viewPosition - fragPosition);
	vec3 phong = vec3(0.0);

	for (int i = 0; i < TOTAL_LIGHTS; i++) {
		vec3 lightDir = normalize(lightSources[i].position - fragPosition);

		vec3 ambient = lightSources[i].ambientColor * material.ambientColor * material.ambientStrength;

		float diff = max(dot(normal, lightDir), 0.0);
		vec3 diffuse = diff * lightSources[i].diffuseColor * material.diffuseColor;

		vec3 reflectDir = reflect(-lightDir, normal);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), lightSources[i].focalStrength);
		vec3 specular = lightSources[i].specularIntensity * material.shininess * spec *
			lightSources[i].specularColor * material.specularColor;

		phong += ambient + diffuse + specular;
	}

	outColor = vec4(phong, 1.0) * baseColor;
}
`
